package infrastructure

import (
	"context"
	"sync"

	collectorDomain "github.com/csilab/sensor-attest/collector/domain"
	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// MemoryStore is an in-process RecordStore used for local development and
// tests. Records are kept per device in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[telemetry.DeviceID][]*collectorDomain.AttestedRecord
	nextID  int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[telemetry.DeviceID][]*collectorDomain.AttestedRecord),
	}
}

// Save appends the record and returns a monotonically increasing id.
func (s *MemoryStore) Save(_ context.Context, record *collectorDomain.AttestedRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	deviceID := record.Reading().DeviceID()
	s.records[deviceID] = append(s.records[deviceID], record)
	return s.nextID, nil
}

// FindByDevice returns at most limit records for the device, most recent
// (latest saved) first.
func (s *MemoryStore) FindByDevice(_ context.Context, deviceID telemetry.DeviceID, limit int) ([]*collectorDomain.AttestedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.records[deviceID]
	if limit > len(stored) {
		limit = len(stored)
	}

	out := make([]*collectorDomain.AttestedRecord, 0, limit)
	for i := len(stored) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}

// Count returns the total number of stored records, for tests and health
// reporting.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, stored := range s.records {
		total += len(stored)
	}
	return total
}
