package domain

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// BindAddress is a validated host:port the collector's HTTP server listens
// on, e.g. ":8080" or "0.0.0.0:8080".
type BindAddress string

// NewBindAddress validates the given string as a bindable address.
func NewBindAddress(value string) (BindAddress, error) {
	if value == "" {
		return "", errors.New("bind address must be non-empty")
	}

	_, port, err := net.SplitHostPort(value)
	if err != nil {
		return "", fmt.Errorf("invalid bind address format: %w", err)
	}
	if _, err := strconv.Atoi(port); err != nil {
		return "", fmt.Errorf("port must be a number: %s", port)
	}

	return BindAddress(value), nil
}
