package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	sensorDomain "github.com/csilab/sensor-attest/sensor/domain"
)

const transmitTimeout = 10 * time.Second

// HTTPTransmitter sends transmission payloads to the collector as JSON over
// HTTP POST. Network-level failures are errors; HTTP-level rejections are
// unsuccessful results carrying the response body.
type HTTPTransmitter struct {
	endpoint sensorDomain.EndpointURL
	client   *http.Client
	headers  map[string]string
}

// NewHTTPTransmitter creates a transmitter for the given endpoint. A
// non-empty bearerToken adds an Authorization header to every request.
func NewHTTPTransmitter(endpoint sensorDomain.EndpointURL, bearerToken string) *HTTPTransmitter {
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "IoT-Sensor/1.0",
	}
	if bearerToken != "" {
		headers["Authorization"] = "Bearer " + bearerToken
	}

	return &HTTPTransmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: transmitTimeout},
		headers:  headers,
	}
}

// Transmit POSTs the payload and reports the collector's verdict.
func (t *HTTPTransmitter) Transmit(ctx context.Context, payload sensorDomain.TransmissionPayload) (sensorDomain.TransmissionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return sensorDomain.TransmissionResult{}, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, string(t.endpoint), bytes.NewReader(body))
	if err != nil {
		return sensorDomain.TransmissionResult{}, fmt.Errorf("build request: %w", err)
	}
	for name, value := range t.headers {
		req.Header.Set(name, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return sensorDomain.TransmissionResult{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return sensorDomain.TransmissionResult{}, fmt.Errorf("read response: %w", err)
	}

	return sensorDomain.TransmissionResult{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
		Success:    resp.StatusCode == http.StatusOK,
	}, nil
}
