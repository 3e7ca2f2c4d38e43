package telemetry

import "errors"

// Sentinel errors for value object construction and frame parsing.
// They are wrapped with context using fmt.Errorf("%w: ...") so callers
// can classify failures with errors.Is while still seeing the offending value.
var (
	// ErrInvalidDeviceID indicates a device identifier that does not match
	// the required format or length bounds.
	ErrInvalidDeviceID = errors.New("invalid device id")

	// ErrInvalidSensorValue indicates a temperature outside the supported
	// range, or a frame part that is not a number at all.
	ErrInvalidSensorValue = errors.New("invalid sensor value")

	// ErrMalformedFrame indicates a frame that does not split into exactly
	// two colon-separated parts.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrInvalidKey indicates a cipher key of the wrong size.
	ErrInvalidKey = errors.New("invalid cipher key")

	// ErrInvalidHash indicates a hash string that is not 64 lowercase hex characters.
	ErrInvalidHash = errors.New("invalid data hash")

	// ErrInvalidPayload indicates an encrypted payload that is empty, not
	// valid hex, or whose byte length is not a multiple of the block size.
	ErrInvalidPayload = errors.New("invalid encrypted payload")

	// ErrInvalidTimestamp indicates a negative epoch timestamp.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
