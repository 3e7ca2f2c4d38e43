package telemetry

import (
	"encoding/hex"
	"fmt"
)

// KeySize is the required cipher key length in bytes.
const KeySize = 16

// CipherKey is the shared secret used by the codec. It is fixed at process
// startup and never rotated during the process lifetime.
type CipherKey []byte

// NewCipherKey validates the key length and returns a private copy of the bytes.
func NewCipherKey(raw []byte) (CipherKey, error) {
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKey, KeySize, len(raw))
	}

	key := make(CipherKey, KeySize)
	copy(key, raw)
	return key, nil
}

// ParseCipherKey decodes a key from its hex representation, as carried in
// configuration.
func ParseCipherKey(hexText string) (CipherKey, error) {
	raw, err := hex.DecodeString(hexText)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex: %v", ErrInvalidKey, err)
	}
	return NewCipherKey(raw)
}

// DefaultKey returns the documented 16-byte default key shared between the
// reference devices and the collector.
func DefaultKey() CipherKey {
	return CipherKey{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
	}
}
