package domain

import (
	"fmt"
	"strings"
)

// EndpointURL is the collector's ingestion endpoint, e.g.
// "http://localhost:8080/api/sensor-data".
type EndpointURL string

// NewEndpointURL validates the given string and returns it as an EndpointURL.
// Only http and https endpoints are accepted.
func NewEndpointURL(url string) (EndpointURL, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("invalid endpoint URL %q: must start with http:// or https://", url)
	}
	return EndpointURL(url), nil
}
