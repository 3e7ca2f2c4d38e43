package domain

import (
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

type nopLogger struct{}

func (nopLogger) Info(_ string, _ ...interface{})  {}
func (nopLogger) Error(_ string, _ ...interface{}) {}

func newTestIngestor() *Ingestor {
	return NewIngestor(telemetry.NewCodec(telemetry.DefaultKey()), nopLogger{})
}

func encodeFrame(t *testing.T, frame string) string {
	t.Helper()
	return telemetry.NewCodec(telemetry.DefaultKey()).EncodeToPayload(frame).Hex()
}

func TestIngestor_Ingest_Success(t *testing.T) {
	before := time.Now().Unix()

	record, err := newTestIngestor().Ingest(IngestRequest{
		DeviceID:      "ESP-01",
		EncryptedData: encodeFrame(t, "ESP-01:23.5"),
	})
	require.NoError(t, err)

	assert.Equal(t, telemetry.DeviceID("ESP-01"), record.Reading().DeviceID())
	assert.Equal(t, 23.5, record.Reading().Value().Celsius())
	assert.Equal(t, telemetry.Fingerprint("ESP-01:23.5"), record.Hash())
	assert.GreaterOrEqual(t, record.ReceivedAt().Unix(), before)
}

func TestIngestor_Ingest_IdentityMismatch(t *testing.T) {
	_, err := newTestIngestor().Ingest(IngestRequest{
		DeviceID:      "ESP-02",
		EncryptedData: encodeFrame(t, "ESP-01:22.5"),
	})
	require.Error(t, err)

	var mismatch *IdentityMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, telemetry.DeviceID("ESP-02"), mismatch.Claimed)
	assert.Equal(t, telemetry.DeviceID("ESP-01"), mismatch.Embedded)
	assert.Contains(t, err.Error(), "ESP-01")
	assert.Contains(t, err.Error(), "ESP-02")
}

func TestIngestor_Ingest_InvalidRequest(t *testing.T) {
	valid := encodeFrame(t, "ESP-01:22.5")

	cases := map[string]IngestRequest{
		"bad device id":         {DeviceID: "X", EncryptedData: valid},
		"empty device id":       {DeviceID: "", EncryptedData: valid},
		"empty payload":         {DeviceID: "ESP-01", EncryptedData: ""},
		"non-hex payload":       {DeviceID: "ESP-01", EncryptedData: "zz"},
		"partial-block payload": {DeviceID: "ESP-01", EncryptedData: "abcd"},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newTestIngestor().Ingest(req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestIngestor_Ingest_DecodeError(t *testing.T) {
	// Encode bytes that are not valid UTF-8, so decoding succeeds at the
	// codec level but fails the text check.
	codec := telemetry.NewCodec(telemetry.DefaultKey())
	ciphertext := codec.Encode([]byte{0xff, 0xfe, 0x80, 0x81})

	_, err := newTestIngestor().Ingest(IngestRequest{
		DeviceID:      "ESP-01",
		EncryptedData: hex.EncodeToString(ciphertext),
	})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestIngestor_Ingest_FrameErrorsPassThrough(t *testing.T) {
	cases := map[string]struct {
		frame string
		want  error
	}{
		"three parts":     {"ESP-01:22.5:extra", telemetry.ErrMalformedFrame},
		"not a number":    {"ESP-01:notanumber", telemetry.ErrInvalidSensorValue},
		"out of range":    {"ESP-01:100.1", telemetry.ErrInvalidSensorValue},
		"bad embedded id": {"BAD:22.5", telemetry.ErrInvalidDeviceID},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newTestIngestor().Ingest(IngestRequest{
				DeviceID:      "ESP-01",
				EncryptedData: encodeFrame(t, tc.frame),
			})
			assert.True(t, errors.Is(err, tc.want), "expected %v, got %v", tc.want, err)
		})
	}
}

func TestIngestor_Ingest_WrongKeyFails(t *testing.T) {
	otherKey, err := telemetry.NewCipherKey([]byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9})
	require.NoError(t, err)
	payload := telemetry.NewCodec(otherKey).EncodeToPayload("ESP-01:22.5")

	_, err = newTestIngestor().Ingest(IngestRequest{
		DeviceID:      "ESP-01",
		EncryptedData: payload.Hex(),
	})
	// Under a different key the plaintext is garbage: either not UTF-8 or
	// not a parseable frame. Both are rejections; a success would mean the
	// cipher key does not matter.
	require.Error(t, err)
}
