package infrastructure

import (
	"os"

	"github.com/sirupsen/logrus"
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
