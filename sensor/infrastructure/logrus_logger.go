package infrastructure

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/csilab/sensor-attest/pkg/telemetry"
	sensorDomain "github.com/csilab/sensor-attest/sensor/domain"
)

// LogrusLogger adapts a logrus logger to the domain Logger contract.
type LogrusLogger struct {
	logger *logrus.Logger
}

// Info logs an informational message.
func (l *LogrusLogger) Info(msg string, args ...interface{}) {
	l.logger.Infof(msg, args...)
}

// Error logs an error message.
func (l *LogrusLogger) Error(msg string, args ...interface{}) {
	l.logger.Errorf(msg, args...)
}

// NewLogrusLogger creates a configured logger. The level comes from the
// LOG_LEVEL environment variable, defaulting to info.
func NewLogrusLogger() *LogrusLogger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return &LogrusLogger{logger: logger}
}

// ConsoleTransmissionLogger reports transmission attempts and outcomes on the
// device console.
type ConsoleTransmissionLogger struct {
	logger *LogrusLogger
}

// NewConsoleTransmissionLogger creates a transmission logger writing through
// the given logger.
func NewConsoleTransmissionLogger(logger *LogrusLogger) *ConsoleTransmissionLogger {
	return &ConsoleTransmissionLogger{logger: logger}
}

// Attempt logs the start of a transmission.
func (c *ConsoleTransmissionLogger) Attempt(payload sensorDomain.TransmissionPayload) {
	sentAt := telemetry.Timestamp(payload.Timestamp)
	c.logger.Info("transmitting data from %s (%s)", payload.DeviceID, sentAt.ISO())
}

// Success logs an accepted transmission.
func (c *ConsoleTransmissionLogger) Success(result sensorDomain.TransmissionResult) {
	c.logger.Info("transmission succeeded (status: %d)", result.StatusCode)
}

// Failure logs a rejected transmission with a truncated response body.
func (c *ConsoleTransmissionLogger) Failure(result sensorDomain.TransmissionResult) {
	body := result.Body
	if len(body) > 100 {
		body = body[:100]
	}
	c.logger.Error("transmission failed (status: %d): %s", result.StatusCode, body)
}
