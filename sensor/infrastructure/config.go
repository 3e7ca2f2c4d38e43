package infrastructure

import (
	"flag"
	"time"

	"github.com/csilab/sensor-attest/pkg/telemetry"
	sensorDomain "github.com/csilab/sensor-attest/sensor/domain"
)

// defaultKeyHex is the documented pre-shared key; override it in any real
// deployment.
const defaultKeyHex = "2b7e151628aed2a6abf7158809cf4f3c"

// defaultDeviceID must satisfy the DeviceID format so the binary runs out of
// the box.
const defaultDeviceID = "ESP-8266001"

// Config holds the validated sensor configuration.
type Config struct {
	DeviceID    telemetry.DeviceID
	Endpoint    sensorDomain.EndpointURL
	Interval    sensorDomain.Interval
	Key         telemetry.CipherKey
	BearerToken string
	MinTemp     float64
	MaxTemp     float64
}

// GetConfigParameters parses the command line and returns a validated
// configuration.
func GetConfigParameters() (*Config, error) {
	rawDeviceID := flag.String("device-id", defaultDeviceID, "device identifier (ESP-<alphanumeric>)")
	rawEndpoint := flag.String("endpoint", "http://localhost:8080/api/sensor-data", "collector ingest URL")
	rawInterval := flag.Duration("interval", 2*time.Second, "delay between transmissions, greater than zero")
	rawKey := flag.String("key", defaultKeyHex, "pre-shared cipher key, 32 hex characters")
	rawToken := flag.String("token", "", "optional bearer token for the collector")
	minTemp := flag.Float64("min-temp", 15, "lower bound of the simulated temperature range")
	maxTemp := flag.Float64("max-temp", 35, "upper bound of the simulated temperature range")

	flag.Parse()

	deviceID, err := telemetry.NewDeviceID(*rawDeviceID)
	if err != nil {
		return nil, err
	}

	endpoint, err := sensorDomain.NewEndpointURL(*rawEndpoint)
	if err != nil {
		return nil, err
	}

	interval, err := sensorDomain.NewInterval(*rawInterval)
	if err != nil {
		return nil, err
	}

	key, err := telemetry.ParseCipherKey(*rawKey)
	if err != nil {
		return nil, err
	}

	config := &Config{
		DeviceID:    deviceID,
		Endpoint:    endpoint,
		Interval:    interval,
		Key:         key,
		BearerToken: *rawToken,
		MinTemp:     *minTemp,
		MaxTemp:     *maxTemp,
	}
	return config, nil
}
