package main

// Notes:
// - notifyContext: we only test the observable behavior (context creation,
//   cancellation via stop(), and parent context propagation). We do not test
//   actual OS signal delivery since it's non-deterministic and requires
//   platform-specific setup.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("context starts not cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if ctx.Err() != nil {
			t.Fatalf("ctx.Err() = %v, want nil", ctx.Err())
		}
	})

	t.Run("stop function cancels context", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		stop()

		if ctx.Err() == nil {
			t.Fatal("context should be cancelled after stop()")
		}
	})

	t.Run("inherits parent cancellation", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()

		if ctx.Err() == nil {
			t.Fatal("context should be cancelled when parent is cancelled")
		}
	})
}

func TestShutdownSignals(t *testing.T) {
	t.Parallel()

	if len(shutdownSignals) == 0 {
		t.Fatal("shutdownSignals is empty")
	}
}
