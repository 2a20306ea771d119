package events

import (
	"context"
	"fmt"

	"staybook/pkg/kafka"
	"staybook/pkg/middleware"
	"staybook/pkg/model"
)

const (
	EventTypeBookingReceived = "booking.received"
	SchemaVersion            = "1"
)

// Publisher announces accepted bookings to downstream consumers.
type Publisher interface {
	BookingReceived(ctx context.Context, event model.BookingReceivedEvent) error
}

type KafkaPublisher struct {
	producer kafka.Publisher
	source   string
}

func NewKafkaPublisher(producer kafka.Publisher, source string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		source:   source,
	}
}

// BookingReceived publishes event keyed by booking id, so every event for a
// booking lands on the same partition.
func (p *KafkaPublisher) BookingReceived(ctx context.Context, event model.BookingReceivedEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.BookingID).
		WithValue(event).
		WithEventType(EventTypeBookingReceived).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithTimestamp(event.ReceivedAt).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build booking event: %w", err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}
	return nil
}

// NopPublisher drops every event. It is used when publishing is disabled.
type NopPublisher struct{}

func (NopPublisher) BookingReceived(context.Context, model.BookingReceivedEvent) error {
	return nil
}
