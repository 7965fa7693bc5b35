package infra_agent

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/abhinav1singhal/social-dining/internal/config"
	"github.com/abhinav1singhal/social-dining/internal/model"
	"github.com/google/uuid"
)

// Chance the venue turns the agent down.
const busyChance = 0.3

// Driver simulates the reservation agent: it "calls" the restaurant,
// takes a while, and either confirms with a reference or reports busy.
type Driver struct {
	thinkDelay time.Duration
	rng        func() float64
}

type DriverOption func(*Driver)

// WithRand replaces the outcome roll, for tests.
func WithRand(rng func() float64) DriverOption {
	return func(d *Driver) {
		d.rng = rng
	}
}

func New(cfg config.Agent, opts ...DriverOption) *Driver {
	d := &Driver{
		thinkDelay: cfg.ThinkDelay,
		rng:        rand.Float64,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) BookReservation(ctx context.Context, businessName, scheduledTime string, peopleCount int) (model.BookingResult, error) {
	select {
	case <-time.After(d.thinkDelay):
	case <-ctx.Done():
		return model.BookingResult{}, ctx.Err()
	}

	if d.rng() < busyChance {
		return model.BookingResult{
			Status: model.BookingBusy,
			Message: fmt.Sprintf("I called %s, but they are fully booked at %s. Recommend calling them directly.",
				businessName, scheduledTime),
		}, nil
	}

	ref := "YELP-" + strings.ToUpper(uuid.New().String()[:4])
	return model.BookingResult{
		Status:    model.BookingBooked,
		Reference: &ref,
		Message: fmt.Sprintf("Confirmed! Table for %d at %s referenced under #%s.",
			peopleCount, businessName, ref),
	}, nil
}
