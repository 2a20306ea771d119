package events

import (
	"context"
	"testing"
	"time"

	"staybook/pkg/kafka"
	"staybook/pkg/logger"
	"staybook/pkg/model"
)

func TestLogHandler_AcceptsBookingEvent(t *testing.T) {
	msg, err := kafka.NewMessage().
		WithKey("BK1700000000000ABCDE").
		WithValue(model.BookingReceivedEvent{
			BookingID:  "BK1700000000000ABCDE",
			ReceivedAt: time.Now().UTC(),
			Booking:    model.BookingRequest{PropertyID: 3, GuestEmail: "anna@example.com"},
		}).
		WithEventType(EventTypeBookingReceived).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if err := LogHandler(logger.Discard())(context.Background(), msg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLogHandler_RejectsPermanently(t *testing.T) {
	wrongType, err := kafka.NewMessage().WithValue(map[string]string{}).WithEventType("booking.cancelled").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	malformed := kafka.Message{
		Value:   []byte(`{"bookingId":`),
		Headers: map[string]string{kafka.HeaderEventType: EventTypeBookingReceived},
	}

	handler := LogHandler(logger.Discard())
	for name, msg := range map[string]kafka.Message{"wrong type": wrongType, "malformed": malformed} {
		err := handler(context.Background(), msg)
		if err == nil {
			t.Errorf("%s: expected an error", name)
			continue
		}
		if kafka.ClassifyError(err) != kafka.ErrorTypePermanent {
			t.Errorf("%s: expected permanent error, got %v", name, kafka.ClassifyError(err))
		}
	}
}
