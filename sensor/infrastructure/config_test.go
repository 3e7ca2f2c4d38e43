package infrastructure

import (
	"testing"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// The shipped flag defaults must pass the same validation the flags go
// through, so the binary runs without any arguments.
func TestConfigDefaults_AreValid(t *testing.T) {
	if _, err := telemetry.NewDeviceID(defaultDeviceID); err != nil {
		t.Errorf("default device id rejected: %v", err)
	}
	if _, err := telemetry.ParseCipherKey(defaultKeyHex); err != nil {
		t.Errorf("default cipher key rejected: %v", err)
	}
}
