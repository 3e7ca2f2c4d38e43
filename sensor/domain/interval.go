package domain

import (
	"errors"
	"time"
)

// Interval is the validated time between collection cycles.
type Interval time.Duration

// NewInterval creates a new Interval, rejecting non-positive durations.
func NewInterval(val time.Duration) (Interval, error) {
	if val <= 0 {
		return 0, errors.New("collection interval must be greater than 0")
	}
	return Interval(val), nil
}

// Duration returns the interval as a time.Duration.
func (i Interval) Duration() time.Duration {
	return time.Duration(i)
}
