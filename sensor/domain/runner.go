package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// CycleRunner drives the device's periodic collect-encrypt-transmit cycle.
// A failed cycle is logged and the loop continues; the runner stops only when
// the context is cancelled.
type CycleRunner struct {
	device      *Device
	transmitter Transmitter
	txLog       TransmissionLogger
	logger      Logger
	interval    Interval
}

// NewCycleRunner creates a CycleRunner with the given collaborators.
func NewCycleRunner(
	device *Device,
	transmitter Transmitter,
	txLog TransmissionLogger,
	logger Logger,
	interval Interval,
) *CycleRunner {
	return &CycleRunner{
		device:      device,
		transmitter: transmitter,
		txLog:       txLog,
		logger:      logger,
		interval:    interval,
	}
}

// Run executes one cycle immediately, then one per interval tick until the
// context is cancelled.
func (r *CycleRunner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval.Duration())
	defer ticker.Stop()

	r.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runCycle(ctx)
		}
	}
}

func (r *CycleRunner) runCycle(ctx context.Context) {
	err := SafeFunctionRun(func() error {
		return r.executeCycle(ctx)
	}, r.logger)
	if err != nil {
		r.logger.Error("cycle failed: %s", err.Error())
	}
}

// executeCycle performs one collect-encrypt-transmit pass.
func (r *CycleRunner) executeCycle(ctx context.Context) error {
	reading, encrypted, err := r.device.PrepareEncrypted()
	if err != nil {
		return err
	}
	r.logger.Info("collected reading %s, payload %s", reading.Frame(), encrypted.Preview())

	payload := NewTransmissionPayload(r.device.ID(), encrypted, telemetry.Now())
	r.txLog.Attempt(payload)

	result, err := r.transmitter.Transmit(ctx, payload)
	if err != nil {
		return fmt.Errorf("transmission failed: %w", err)
	}

	if result.Successful() {
		r.txLog.Success(result)
	} else {
		r.txLog.Failure(result)
	}
	return nil
}
