package domain

import (
	"context"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// TransmissionPayload is the JSON body POSTed to the collector.
type TransmissionPayload struct {
	DeviceID      string `json:"device_id"`
	EncryptedData string `json:"encrypted_data"`
	Timestamp     int64  `json:"timestamp"`
}

// NewTransmissionPayload builds the wire payload from validated components.
func NewTransmissionPayload(id telemetry.DeviceID, data telemetry.EncryptedPayload, sentAt telemetry.Timestamp) TransmissionPayload {
	return TransmissionPayload{
		DeviceID:      string(id),
		EncryptedData: data.Hex(),
		Timestamp:     sentAt.Unix(),
	}
}

// TransmissionResult is the outcome of one transmit attempt.
type TransmissionResult struct {
	StatusCode int
	Body       string
	Success    bool
}

// Successful reports whether the collector accepted the payload.
func (r TransmissionResult) Successful() bool {
	return r.Success
}

// Transmitter defines the contract for sending payloads to the collector.
// A network-level failure is reported as an error; an HTTP-level rejection is
// a non-successful result.
type Transmitter interface {
	Transmit(ctx context.Context, payload TransmissionPayload) (TransmissionResult, error)
}

// TransmissionLogger observes transmission attempts and their outcomes.
type TransmissionLogger interface {
	Attempt(payload TransmissionPayload)
	Success(result TransmissionResult)
	Failure(result TransmissionResult)
}
