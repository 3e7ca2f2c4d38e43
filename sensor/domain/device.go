// Package domain provides the core business logic of the field device:
// collecting readings, encrypting them, and driving the transmission cycle.
package domain

import (
	"fmt"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// Reader is a source of temperature measurements.
type Reader interface {
	Read() (telemetry.SensorValue, error)
}

// Device pairs a fixed identity with a sensor reader and the codec that
// obfuscates its frames.
type Device struct {
	id     telemetry.DeviceID
	reader Reader
	codec  *telemetry.Codec
}

// NewDevice creates a Device with the given identity, reader, and codec.
func NewDevice(id telemetry.DeviceID, reader Reader, codec *telemetry.Codec) *Device {
	return &Device{
		id:     id,
		reader: reader,
		codec:  codec,
	}
}

// ID returns the device identity.
func (d *Device) ID() telemetry.DeviceID {
	return d.id
}

// CollectReading takes one measurement from the reader.
func (d *Device) CollectReading() (telemetry.Reading, error) {
	value, err := d.reader.Read()
	if err != nil {
		return telemetry.Reading{}, fmt.Errorf("sensor read failed: %w", err)
	}
	return telemetry.NewReading(d.id, value), nil
}

// PrepareEncrypted collects a reading and returns it together with its
// encrypted wire form.
func (d *Device) PrepareEncrypted() (telemetry.Reading, telemetry.EncryptedPayload, error) {
	reading, err := d.CollectReading()
	if err != nil {
		return telemetry.Reading{}, "", err
	}
	return reading, d.codec.EncodeToPayload(reading.Frame()), nil
}
