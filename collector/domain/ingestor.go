// Package domain contains the collector's core business logic: the ingestion
// pipeline that turns an untrusted wire payload into an attested record, the
// error taxonomy of that pipeline, and the record store contract.
package domain

import (
	"fmt"
	"unicode/utf8"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// IngestRequest carries the two logical fields of an inbound ingestion
// request, independent of wire framing. JSON binding lives at the HTTP
// boundary.
type IngestRequest struct {
	DeviceID      string
	EncryptedData string
}

// Ingestor runs the ingestion pipeline: validate the inbound request, decode
// the payload, parse the frame, cross-check the claimed device identity,
// fingerprint the plaintext, and build an immutable record.
//
// The pipeline is stateless and side-effect-free; it is safe to invoke
// concurrently from multiple request handlers. Persistence is deliberately
// not part of the pipeline — the caller saves the returned record through the
// RecordStore as a separate sequential step, so a failed request never
// produces a partial record.
type Ingestor struct {
	codec  *telemetry.Codec
	logger Logger
}

// NewIngestor creates an Ingestor using the given codec and logger.
func NewIngestor(codec *telemetry.Codec, logger Logger) *Ingestor {
	return &Ingestor{
		codec:  codec,
		logger: logger,
	}
}

// Ingest processes one request. Every step short-circuits on failure; there
// are no retries. On success the returned record carries the fingerprint of
// the decoded plaintext frame and a receipt timestamp from the collector's
// clock, which is authoritative over any device-reported time.
func (i *Ingestor) Ingest(req IngestRequest) (*AttestedRecord, error) {
	claimedID, err := telemetry.NewDeviceID(req.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: device_id: %v", ErrInvalidRequest, err)
	}

	payload, err := telemetry.NewEncryptedPayload(req.EncryptedData)
	if err != nil {
		return nil, fmt.Errorf("%w: encrypted_data: %v", ErrInvalidRequest, err)
	}

	plainBytes, err := i.codec.Decode(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !utf8.Valid(plainBytes) {
		return nil, fmt.Errorf("%w: payload does not decode to valid UTF-8 text", ErrDecode)
	}
	plaintext := string(plainBytes)

	reading, err := telemetry.ParseFrame(plaintext)
	if err != nil {
		return nil, err
	}

	// The pipeline's core trust decision: a caller may not attest a reading
	// under an identifier it did not encrypt for.
	if reading.DeviceID() != claimedID {
		return nil, &IdentityMismatchError{Claimed: claimedID, Embedded: reading.DeviceID()}
	}

	hash := telemetry.Fingerprint(plaintext)
	receivedAt := telemetry.Now()

	i.logger.Info("accepted reading from %s: value=%s hash=%s", claimedID, reading.Value(), hash.Short())

	return NewAttestedRecord(reading, hash, receivedAt), nil
}
