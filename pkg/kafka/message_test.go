package kafka

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMessageBuilder_Build(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	msg, err := NewMessage().
		WithKey("BK1").
		WithValue(map[string]int{"guests": 2}).
		WithEventType("booking.received").
		WithTimestamp(ts).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Key != "BK1" {
		t.Errorf("unexpected key %q", msg.Key)
	}
	if string(msg.Value) != `{"guests":2}` {
		t.Errorf("unexpected value %s", msg.Value)
	}
	if msg.GetEventID() == "" {
		t.Error("expected generated event id")
	}
	if got := msg.Headers[HeaderTimestamp]; got != "2024-05-01T10:00:00Z" {
		t.Errorf("unexpected timestamp header %q", got)
	}
}

func TestMessageBuilder_EncodingFailure(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	if err == nil {
		t.Fatal("expected encoding error")
	}
}

func TestMessage_RetryCount(t *testing.T) {
	msg := Message{}
	if msg.GetRetryCount() != 0 {
		t.Fatalf("expected zero retries")
	}

	for i := 1; i <= 12; i++ {
		msg.IncrementRetryCount()
		if got := msg.GetRetryCount(); got != i {
			t.Fatalf("after %d increments got %d", i, got)
		}
	}
	if msg.Headers[HeaderRetryCount] != "12" {
		t.Errorf("unexpected header %q", msg.Headers[HeaderRetryCount])
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ErrorTypeUnknown},
		{"tagged transient", NewTransientError("broker", errors.New("x")), ErrorTypeTransient},
		{"wrapped tagged", fmt.Errorf("outer: %w", NewPermanentError("bad", nil)), ErrorTypePermanent},
		{"connection refused", errors.New("dial tcp: Connection Refused"), ErrorTypeTransient},
		{"i/o timeout", errors.New("read: i/o timeout"), ErrorTypeTransient},
		{"unrecognised", errors.New("json: cannot unmarshal"), ErrorTypePermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyError(tt.err); got != tt.want {
				t.Errorf("ClassifyError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldRetry(t *testing.T) {
	transient := NewTransientError("flaky", nil)

	if !ShouldRetry(transient, 0, 3) {
		t.Error("transient error below the limit should retry")
	}
	if ShouldRetry(transient, 3, 3) {
		t.Error("retry limit reached should not retry")
	}
	if ShouldRetry(errors.New("schema mismatch"), 0, 3) {
		t.Error("permanent errors should not retry")
	}
}
