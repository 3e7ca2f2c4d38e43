// This component simulates a field temperature sensor: it samples readings,
// encrypts them with a pre-shared key, and pushes them to the collector.
//
// Usage example: sensor -device-id ESP-8266001 -endpoint http://localhost:8080/api/sensor-data -interval 2s
//
// Flags:
//
//	-device-id: device identifier in the ESP-<alphanumeric> form
//	-endpoint: collector ingest URL
//	-interval: delay between transmissions (e.g., 2s)
//	-key: pre-shared cipher key, 32 hex characters
//	-token: optional bearer token for the collector
//	-min-temp, -max-temp: simulated temperature range
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/csilab/sensor-attest/pkg/telemetry"
	sensorDomain "github.com/csilab/sensor-attest/sensor/domain"
	sensorInfrastructure "github.com/csilab/sensor-attest/sensor/infrastructure"
)

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	flag.Usage()
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	config, err := sensorInfrastructure.GetConfigParameters()
	if err != nil {
		endWithError(err)
	}

	logger := sensorInfrastructure.NewLogrusLogger()

	reader, err := sensorInfrastructure.NewRandomReader(config.MinTemp, config.MaxTemp)
	if err != nil {
		endWithError(err)
	}

	codec := telemetry.NewCodec(config.Key)
	device := sensorDomain.NewDevice(config.DeviceID, reader, codec)
	transmitter := sensorInfrastructure.NewHTTPTransmitter(config.Endpoint, config.BearerToken)
	txLog := sensorInfrastructure.NewConsoleTransmissionLogger(logger)

	runner := sensorDomain.NewCycleRunner(device, transmitter, txLog, logger, config.Interval)

	logger.Info("Sensor %s started, reporting to %s every %s", config.DeviceID, config.Endpoint, config.Interval.Duration())
	runner.Run(ctx)
	logger.Info("Sensor stopped")
}
