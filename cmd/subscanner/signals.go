// cmd/subscanner/signals.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// rootContextWithSignals derives a context from parent that is canceled on
// SIGINT/SIGTERM or, when timeout > 0, once the timeout expires.
// The returned cancel function releases the signal handler.
func rootContextWithSignals(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}

	var base context.Context
	var baseCancel context.CancelFunc
	if timeout > 0 {
		base, baseCancel = context.WithTimeout(parent, timeout)
	} else {
		base, baseCancel = context.WithCancel(parent)
	}

	ctx, stop := signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)

	return ctx, func() {
		stop()
		baseCancel()
	}
}
