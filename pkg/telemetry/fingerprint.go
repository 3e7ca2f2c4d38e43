package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint computes the SHA-256 digest of the UTF-8 bytes of text and
// returns it as 64 lowercase hex characters. It is deterministic and has no
// failure mode.
func Fingerprint(text string) DataHash {
	sum := sha256.Sum256([]byte(text))
	return DataHash(hex.EncodeToString(sum[:]))
}
