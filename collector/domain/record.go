package domain

import (
	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// AttestedRecord is a reading that passed every ingestion check, bound to the
// fingerprint of its decoded plaintext frame and stamped with the collector's
// receipt time. Records are immutable once constructed; the store owns them
// after Save.
type AttestedRecord struct {
	reading    telemetry.Reading
	hash       telemetry.DataHash
	receivedAt telemetry.Timestamp
}

// NewAttestedRecord assembles a record from already-validated components.
// The ingestion pipeline is the only producer for fresh records; stores use it
// to rebuild records loaded from persistence.
func NewAttestedRecord(reading telemetry.Reading, hash telemetry.DataHash, receivedAt telemetry.Timestamp) *AttestedRecord {
	return &AttestedRecord{
		reading:    reading,
		hash:       hash,
		receivedAt: receivedAt,
	}
}

// Reading returns the validated measurement.
func (r *AttestedRecord) Reading() telemetry.Reading {
	return r.reading
}

// Hash returns the integrity fingerprint of the decoded plaintext frame.
func (r *AttestedRecord) Hash() telemetry.DataHash {
	return r.hash
}

// ReceivedAt returns the collector-side receipt timestamp.
func (r *AttestedRecord) ReceivedAt() telemetry.Timestamp {
	return r.receivedAt
}
