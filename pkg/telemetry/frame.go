package telemetry

import (
	"fmt"
	"strconv"
	"strings"
)

// Reading is one validated measurement: a device identifier paired with a
// sensor value. Both components are checked at construction, so a Reading in
// hand is always well-formed.
type Reading struct {
	deviceID DeviceID
	value    SensorValue
}

// NewReading pairs a device identifier with a measured value.
func NewReading(deviceID DeviceID, value SensorValue) Reading {
	return Reading{deviceID: deviceID, value: value}
}

// DeviceID returns the identifier of the unit that produced the reading.
func (r Reading) DeviceID() DeviceID {
	return r.deviceID
}

// Value returns the measured temperature.
func (r Reading) Value() SensorValue {
	return r.value
}

// Frame returns the wire-level text form "<id>:<value>", e.g. "ESP-01:22.5".
func (r Reading) Frame() string {
	return string(r.deviceID) + ":" + r.value.String()
}

// ParseFrame parses the colon-delimited text form back into a Reading.
// Whitespace around each part is trimmed before validation. Failures carry
// the offending raw value: ErrMalformedFrame reports the actual part count,
// ErrInvalidSensorValue the literal that failed to parse.
func ParseFrame(frame string) (Reading, error) {
	parts := strings.Split(frame, ":")
	if len(parts) != 2 {
		return Reading{}, fmt.Errorf("%w: expected ID:VALUE, got %d parts", ErrMalformedFrame, len(parts))
	}

	deviceID, err := NewDeviceID(strings.TrimSpace(parts[0]))
	if err != nil {
		return Reading{}, err
	}

	literal := strings.TrimSpace(parts[1])
	celsius, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSensorValue, literal)
	}

	value, err := NewSensorValue(celsius)
	if err != nil {
		return Reading{}, err
	}

	return NewReading(deviceID, value), nil
}
