package infrastructure

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	collectorDomain "github.com/csilab/sensor-attest/collector/domain"
	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// PostgresStore is the RecordStore backed by Postgres through pgx.
type PostgresStore struct {
	conn  *pgx.Conn
	table string
}

// NewPostgresStore connects to the database described by connString.
func NewPostgresStore(ctx context.Context, connString, table string) (*PostgresStore, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresStore{conn: conn, table: table}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

// InitializeTable creates the record table if it does not exist yet.
func (s *PostgresStore) InitializeTable(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			device_id TEXT NOT NULL,
			sensor_value DOUBLE PRECISION NOT NULL,
			data_hash TEXT NOT NULL,
			received_at BIGINT NOT NULL
		)
	`, s.table))
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}

	return nil
}

// Save inserts the record and returns the generated id.
func (s *PostgresStore) Save(ctx context.Context, record *collectorDomain.AttestedRecord) (int64, error) {
	var id int64
	err := s.conn.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (device_id, sensor_value, data_hash, received_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, s.table),
		string(record.Reading().DeviceID()),
		record.Reading().Value().Celsius(),
		string(record.Hash()),
		record.ReceivedAt().Unix(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	return id, nil
}

// FindByDevice returns at most limit records for the device, most recent
// first. Rows are rebuilt through the value object constructors, so corrupted
// database content surfaces as an error rather than as an invalid record.
func (s *PostgresStore) FindByDevice(ctx context.Context, deviceID telemetry.DeviceID, limit int) ([]*collectorDomain.AttestedRecord, error) {
	rows, err := s.conn.Query(ctx, fmt.Sprintf(`
		SELECT device_id, sensor_value, data_hash, received_at
		FROM %s
		WHERE device_id = $1
		ORDER BY received_at DESC, id DESC
		LIMIT $2
	`, s.table), string(deviceID), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*collectorDomain.AttestedRecord
	for rows.Next() {
		var (
			rawID    string
			rawValue float64
			rawHash  string
			rawUnix  int64
		)
		if err := rows.Scan(&rawID, &rawValue, &rawHash, &rawUnix); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		record, err := rebuildRecord(rawID, rawValue, rawHash, rawUnix)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return records, nil
}

func rebuildRecord(rawID string, rawValue float64, rawHash string, rawUnix int64) (*collectorDomain.AttestedRecord, error) {
	deviceID, err := telemetry.NewDeviceID(rawID)
	if err != nil {
		return nil, fmt.Errorf("stored record is corrupt: %w", err)
	}
	value, err := telemetry.NewSensorValue(rawValue)
	if err != nil {
		return nil, fmt.Errorf("stored record is corrupt: %w", err)
	}
	hash, err := telemetry.NewDataHash(rawHash)
	if err != nil {
		return nil, fmt.Errorf("stored record is corrupt: %w", err)
	}
	receivedAt, err := telemetry.NewTimestamp(rawUnix)
	if err != nil {
		return nil, fmt.Errorf("stored record is corrupt: %w", err)
	}

	return collectorDomain.NewAttestedRecord(telemetry.NewReading(deviceID, value), hash, receivedAt), nil
}
