package domain

import (
	"context"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// RecordStore persists attested records and serves per-device history. Save is
// a transfer of ownership: the caller must not mutate a record after handing
// it off. Implementations must be safe for concurrent use from multiple
// ingestion requests.
type RecordStore interface {
	// Save persists the record and returns its store-assigned identifier.
	Save(ctx context.Context, record *AttestedRecord) (int64, error)

	// FindByDevice returns at most limit records for the device,
	// most recent first.
	FindByDevice(ctx context.Context, deviceID telemetry.DeviceID, limit int) ([]*AttestedRecord, error)
}
