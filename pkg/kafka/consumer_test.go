package kafka

import (
	"context"
	"errors"
	"testing"

	"staybook/pkg/logger"
)

func TestConsumer_ProcessRetriesTransientErrors(t *testing.T) {
	calls := 0
	c := &Consumer{
		maxRetries: 3,
		log:        logger.Discard(),
		handler: func(ctx context.Context, msg Message) error {
			calls++
			if calls < 3 {
				return NewTransientError("broker busy", nil)
			}
			return nil
		},
	}

	if err := c.process(context.Background(), Message{Headers: map[string]string{}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestConsumer_ProcessGivesUpOnPermanentError(t *testing.T) {
	calls := 0
	permanent := errors.New("schema mismatch")
	c := &Consumer{
		maxRetries: 5,
		log:        logger.Discard(),
		handler: func(ctx context.Context, msg Message) error {
			calls++
			return permanent
		},
	}

	err := c.process(context.Background(), Message{})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
}

func TestConsumer_MiddlewareOrder(t *testing.T) {
	var order []string
	c := &Consumer{
		log: logger.Discard(),
		handler: func(ctx context.Context, msg Message) error {
			order = append(order, "handler")
			return nil
		},
	}
	for _, name := range []string{"outer", "inner"} {
		c.Use(func(ctx context.Context, msg Message, next MessageHandler) error {
			order = append(order, name)
			return next(ctx, msg)
		})
	}

	if err := c.process(context.Background(), Message{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"outer", "inner", "handler"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}
