package services

import (
	"context"

	"hotel-frontdesk/models"
)

// EventPublisher delivers committed lifecycle events. Delivery is best effort;
// the state change has already been persisted when Publish is called.
type EventPublisher interface {
	Publish(ctx context.Context, evt models.ReservationEvent) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.ReservationEvent) error { return nil }
