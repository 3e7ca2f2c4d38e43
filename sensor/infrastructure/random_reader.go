// Package infrastructure provides concrete implementations of the sensor
// domain contracts: the simulated temperature reader, the HTTP transmitter,
// and configuration parsing.
package infrastructure

import (
	"fmt"
	"math/rand"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// RandomReader is a reader implementation that simulates a temperature probe
// by sampling uniformly from a configured range.
type RandomReader struct {
	min float64
	max float64
}

// NewRandomReader creates a reader producing values in [min, max).
func NewRandomReader(min, max float64) (*RandomReader, error) {
	if min >= max {
		return nil, fmt.Errorf("invalid temperature range: min %v must be below max %v", min, max)
	}
	// Reject ranges the value object could never accept.
	if _, err := telemetry.NewSensorValue(min); err != nil {
		return nil, err
	}
	if _, err := telemetry.NewSensorValue(max); err != nil {
		return nil, err
	}

	return &RandomReader{min: min, max: max}, nil
}

// Read returns a random temperature from the configured range, normalized to
// one decimal place by the value object.
func (r *RandomReader) Read() (telemetry.SensorValue, error) {
	celsius := r.min + rand.Float64()*(r.max-r.min)
	return telemetry.NewSensorValue(celsius)
}
