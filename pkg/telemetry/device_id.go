// Package telemetry contains the wire-level domain shared by the sensor and
// the collector: validated value objects, the colon-delimited frame format,
// the XOR stream codec, and the fingerprint calculator.
package telemetry

import (
	"fmt"
	"regexp"
)

const (
	deviceIDMinLength = 5
	deviceIDMaxLength = 20
)

var deviceIDPattern = regexp.MustCompile(`^ESP-[A-Z0-9]+$`)

// DeviceID identifies a field unit. The format is a fixed "ESP-" prefix
// followed by uppercase alphanumerics, total length between 5 and 20.
type DeviceID string

// NewDeviceID validates the given string and returns it as a DeviceID.
func NewDeviceID(value string) (DeviceID, error) {
	if len(value) < deviceIDMinLength {
		return "", fmt.Errorf("%w: %q is too short (minimum %d characters)", ErrInvalidDeviceID, value, deviceIDMinLength)
	}
	if len(value) > deviceIDMaxLength {
		return "", fmt.Errorf("%w: %q is too long (maximum %d characters)", ErrInvalidDeviceID, value, deviceIDMaxLength)
	}
	if !deviceIDPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q does not match the expected format ESP-XXXX", ErrInvalidDeviceID, value)
	}

	return DeviceID(value), nil
}
