package domain

import (
	"fmt"
)

// SafeFunctionRun executes the provided function with panic recovery.
// A panic from a misbehaving reader or transport is logged and returned as a
// regular error instead of crashing the device loop.
func SafeFunctionRun(fn func() error, logger Logger) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
			logger.Error("panic: %s", fmt.Sprintf("%v", rec))
		}
	}()
	err = fn()
	return
}
