package domain

import (
	"errors"
	"fmt"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// ErrInvalidRequest is a sentinel for malformed or missing inbound request
// fields. It is wrapped with fmt.Errorf("%w: ...") to carry the offending
// value for diagnostics.
var ErrInvalidRequest = errors.New("invalid request")

// ErrDecode indicates ciphertext that could not be decoded into valid text.
var ErrDecode = errors.New("decode failed")

// ErrPersistence indicates a record store failure surfaced by the ingestion
// boundary.
var ErrPersistence = errors.New("persistence failed")

// IdentityMismatchError is returned when the device identifier embedded in a
// decoded frame differs from the identifier claimed by the caller. It reports
// both values so an operator can diagnose without re-running the request.
type IdentityMismatchError struct {
	Claimed  telemetry.DeviceID
	Embedded telemetry.DeviceID
}

// Error implements the error interface.
func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("device identity mismatch: request=%s, packet=%s", e.Claimed, e.Embedded)
}
