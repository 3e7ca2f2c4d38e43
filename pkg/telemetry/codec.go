package telemetry

import (
	"encoding/hex"
	"fmt"
)

// BlockSize is the padding block size in bytes.
const BlockSize = 16

// Codec is the paired encode/decode transform applied to telemetry frames:
// a repeating-key XOR stream over block-padded plaintext. Decode(Encode(p)) == p
// for every plaintext p. The transform is self-inverse; the only asymmetry
// between the two directions is padding application and removal.
//
// This is an obfuscation scheme, not authenticated encryption. The byte
// semantics are frozen for wire compatibility.
type Codec struct {
	key CipherKey
	iv  [BlockSize]byte
}

// NewCodec creates a codec using the given shared key.
func NewCodec(key CipherKey) *Codec {
	c := &Codec{key: key}
	// The IV is dead configuration carried over from the wire protocol
	// definition. It is never mixed into the transform.
	for i := range c.iv {
		c.iv[i] = byte(i)
	}
	return c
}

// Encode pads the plaintext to a whole number of blocks and applies the key
// stream. Padding appends n bytes of value n where n = BlockSize - (len mod
// BlockSize); a plaintext already block-aligned gets a full extra block of 16
// bytes each valued 16, so padding is never empty.
func (c *Codec) Encode(plaintext []byte) []byte {
	padded := pad(plaintext)
	return c.transform(padded)
}

// Decode applies the key stream and strips the padding indicated by the final
// output byte. The trailing bytes are not checked against the declared count:
// a corrupted final byte silently truncates instead of failing. That matches
// the deployed wire behavior and must not be tightened to strict PKCS#7
// checking without re-specifying the format.
//
// A final byte of 0 strips nothing and returns the full buffer. Encode never
// emits a zero pad, so this arises only from forged ciphertext, which then
// fails frame parsing on the padding bytes left in the plaintext.
func (c *Codec) Decode(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrInvalidPayload)
	}

	out := c.transform(ciphertext)
	padLen := int(out[len(out)-1])
	if padLen > len(out) {
		// Nothing left to keep. Permissive like the rest of unpadding.
		return []byte{}, nil
	}
	return out[:len(out)-padLen], nil
}

// EncodeToPayload encodes a plaintext frame and returns its transport form.
func (c *Codec) EncodeToPayload(plaintext string) EncryptedPayload {
	return EncryptedPayload(hex.EncodeToString(c.Encode([]byte(plaintext))))
}

// transform XORs every input byte with the key, cycling the key as needed.
func (c *Codec) transform(input []byte) []byte {
	out := make([]byte, len(input))
	for i, b := range input {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return out
}

func pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	padded := make([]byte, 0, len(data)+padLen)
	padded = append(padded, data...)
	for i := 0; i < padLen; i++ {
		padded = append(padded, byte(padLen))
	}
	return padded
}
