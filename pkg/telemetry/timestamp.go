package telemetry

import (
	"fmt"
	"time"
)

// Timestamp is a point in time expressed as non-negative seconds since the
// Unix epoch.
type Timestamp int64

// NewTimestamp validates the given epoch seconds value.
func NewTimestamp(unixSeconds int64) (Timestamp, error) {
	if unixSeconds < 0 {
		return 0, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidTimestamp, unixSeconds)
	}
	return Timestamp(unixSeconds), nil
}

// Now returns the current wall-clock time as a Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().Unix())
}

// Unix returns the timestamp as epoch seconds.
func (t Timestamp) Unix() int64 {
	return int64(t)
}

// Time returns the timestamp as a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// ISO returns the timestamp in RFC 3339 form, e.g. "2026-08-24T12:00:00Z".
func (t Timestamp) ISO() string {
	return t.Time().Format(time.RFC3339)
}
