package studio

import (
	"context"
	"time"
)

// Latency stands in for the image generation backend: AddShot calls Wait
// before rendering the placeholder.
type Latency interface {
	Wait(ctx context.Context) error
}

// LatencyFunc adapts a function to the Latency interface.
type LatencyFunc func(ctx context.Context) error

// Wait implements Latency.
func (f LatencyFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// SimulatedLatency waits for a fixed delay.
type SimulatedLatency struct {
	Delay time.Duration
}

// Wait implements Latency. It returns early only if ctx is done.
func (l SimulatedLatency) Wait(ctx context.Context) error {
	if l.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(l.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
