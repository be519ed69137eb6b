package events

import (
	"context"

	"dogroom/pkg/model"
)

const (
	BookingCreated   = "booking.created"
	BookingConfirmed = "booking.confirmed"
	BookingRejected  = "booking.rejected"
	BookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published on every booking lifecycle change.
type BookingEvent struct {
	Type    string        `json:"type"`
	Booking model.Booking `json:"booking"`
	At      int64         `json:"at"`
}

// Publisher emits domain events. Publishing is best-effort: callers log
// failures but never fail the request over them.
type Publisher interface {
	BookingChanged(ctx context.Context, eventType string, booking model.Booking) error
	Close() error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) BookingChanged(context.Context, string, model.Booking) error { return nil }
func (Noop) Close() error                                                { return nil }
