package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// EncryptedPayload is ciphertext in its transport form: lowercase hex text
// whose decoded byte length is a positive multiple of the cipher block size.
type EncryptedPayload string

// NewEncryptedPayload validates untrusted hex text received from the wire.
func NewEncryptedPayload(hexText string) (EncryptedPayload, error) {
	if len(hexText) == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidPayload)
	}

	raw, err := hex.DecodeString(hexText)
	if err != nil {
		return "", fmt.Errorf("%w: not valid hex: %v", ErrInvalidPayload, err)
	}
	if len(raw)%BlockSize != 0 {
		return "", fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte block size", ErrInvalidPayload, len(raw), BlockSize)
	}

	return EncryptedPayload(hexText), nil
}

// Hex returns the payload in its transport form.
func (p EncryptedPayload) Hex() string {
	return string(p)
}

// Bytes returns the decoded ciphertext bytes.
func (p EncryptedPayload) Bytes() []byte {
	raw, err := hex.DecodeString(string(p))
	if err != nil {
		// The constructor guarantees valid hex; reaching here means the
		// payload was built by bypassing it.
		panic(fmt.Sprintf("telemetry: corrupt payload: %v", err))
	}
	return raw
}

// Preview returns a truncated form of the hex text for log lines.
func (p EncryptedPayload) Preview() string {
	const previewLength = 40
	if len(p) > previewLength {
		return string(p[:previewLength]) + "..."
	}
	return string(p)
}

// Digest returns the SHA-256 of the hex text. This is a debugging utility
// only: the attestation contract fingerprints the decoded plaintext on the
// collector side, never the ciphertext.
func (p EncryptedPayload) Digest() DataHash {
	sum := sha256.Sum256([]byte(p))
	return DataHash(hex.EncodeToString(sum[:]))
}
