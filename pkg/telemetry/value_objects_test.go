package telemetry

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCipherKey(t *testing.T) {
	if _, err := NewCipherKey(make([]byte, 16)); err != nil {
		t.Errorf("16-byte key rejected: %v", err)
	}
	for _, size := range []int{0, 15, 17, 32} {
		if _, err := NewCipherKey(make([]byte, size)); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("size %d: expected ErrInvalidKey, got %v", size, err)
		}
	}
}

func TestNewCipherKey_CopiesInput(t *testing.T) {
	raw := make([]byte, 16)
	key, err := NewCipherKey(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw[0] = 0xff
	if key[0] != 0 {
		t.Error("key shares backing array with caller input")
	}
}

func TestParseCipherKey(t *testing.T) {
	key, err := ParseCipherKey("2b7e151628aed2a6abf7158809cf4f3c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(key) != string(DefaultKey()) {
		t.Error("parsed key does not match the documented default")
	}

	if _, err := ParseCipherKey("not-hex"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := ParseCipherKey("2b7e"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey for short key, got %v", err)
	}
}

func TestNewDataHash(t *testing.T) {
	valid := strings.Repeat("0f", 32)
	if _, err := NewDataHash(valid); err != nil {
		t.Errorf("valid hash rejected: %v", err)
	}

	for _, invalid := range []string{
		"",
		strings.Repeat("0f", 31),
		strings.Repeat("0f", 33),
		strings.Repeat("0F", 32), // uppercase
		strings.Repeat("0g", 32),
	} {
		if _, err := NewDataHash(invalid); !errors.Is(err, ErrInvalidHash) {
			t.Errorf("%q: expected ErrInvalidHash, got %v", invalid, err)
		}
	}
}

func TestDataHash_Short(t *testing.T) {
	h, err := NewDataHash(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Short() != "abababab" {
		t.Errorf("expected first 8 characters, got %q", h.Short())
	}
}

func TestNewTimestamp(t *testing.T) {
	if _, err := NewTimestamp(0); err != nil {
		t.Errorf("epoch zero rejected: %v", err)
	}
	if _, err := NewTimestamp(-1); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp, got %v", err)
	}
}

func TestTimestamp_ISO(t *testing.T) {
	ts, err := NewTimestamp(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.ISO() != "1970-01-01T00:00:00Z" {
		t.Errorf("unexpected ISO form: %s", ts.ISO())
	}
}
