package telemetry

import (
	"fmt"
	"math"
	"strconv"
)

const (
	minTemperature = -50.0
	maxTemperature = 100.0
)

// SensorValue is a temperature measurement in degrees Celsius, normalized to
// one decimal place at construction time. The rounded value is final; there is
// no post-construction mutation path.
type SensorValue float64

// NewSensorValue rounds the given temperature to one decimal place and
// validates it against the supported range [-50.0, 100.0]. Rounding happens
// before the range check, so 100.04 is accepted and 100.06 is not.
func NewSensorValue(celsius float64) (SensorValue, error) {
	rounded := math.Round(celsius*10) / 10
	if rounded < minTemperature {
		return 0, fmt.Errorf("%w: temperature too low: %v°C", ErrInvalidSensorValue, rounded)
	}
	if rounded > maxTemperature {
		return 0, fmt.Errorf("%w: temperature too high: %v°C", ErrInvalidSensorValue, rounded)
	}

	return SensorValue(rounded), nil
}

// Celsius returns the measurement in degrees Celsius.
func (v SensorValue) Celsius() float64 {
	return float64(v)
}

// Fahrenheit returns the measurement converted to degrees Fahrenheit.
func (v SensorValue) Fahrenheit() float64 {
	return float64(v)*9/5 + 32
}

// String returns the one-decimal textual form used in wire frames, e.g. "22.5".
func (v SensorValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', 1, 64)
}
