package telemetry

import "fmt"

const hashLength = 64

// DataHash is a 256-bit content digest rendered as 64 lowercase hex
// characters, used to attest record integrity.
type DataHash string

// NewDataHash validates the textual digest form.
func NewDataHash(hexText string) (DataHash, error) {
	if len(hexText) != hashLength {
		return "", fmt.Errorf("%w: must be %d characters, got %d", ErrInvalidHash, hashLength, len(hexText))
	}
	for _, c := range hexText {
		if !isLowerHex(byte(c)) {
			return "", fmt.Errorf("%w: must contain only lowercase hex characters", ErrInvalidHash)
		}
	}

	return DataHash(hexText), nil
}

// Short returns the first 8 characters, a compact form for log lines.
func (h DataHash) Short() string {
	return string(h[:8])
}

func (h DataHash) String() string {
	return string(h)
}

func isLowerHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
