package booking

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// ErrServiceUnavailable is returned when the booking backend rejects a
// submission as temporarily down.
var ErrServiceUnavailable = errors.New("booking service temporarily unavailable")

// Gateway submits a finished booking to the backend.
type Gateway interface {
	Book(ctx context.Context, details *AppointmentDetails) error
}

// SimulatedGateway stands in for the real booking backend. Each call waits
// the configured delay, then succeeds or fails on a single uniform draw
// against the success rate.
type SimulatedGateway struct {
	delay       time.Duration
	successRate float64
	draw        func() float64
}

func NewSimulatedGateway(delay time.Duration, successRate float64) *SimulatedGateway {
	return &SimulatedGateway{
		delay:       delay,
		successRate: successRate,
		draw:        rand.Float64,
	}
}

func (g *SimulatedGateway) Book(ctx context.Context, _ *AppointmentDetails) error {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	if g.draw() > g.successRate {
		return ErrServiceUnavailable
	}
	return nil
}
