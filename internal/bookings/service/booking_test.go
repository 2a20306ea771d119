package service

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/validator"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"
)

// ────────────────────────────────────────────────
// Mock publisher for testing
// ────────────────────────────────────────────────

type mockPublisher struct {
	mu     sync.Mutex
	events []model.BookingReceivedEvent
	err    error
}

func (m *mockPublisher) BookingReceived(ctx context.Context, event model.BookingReceivedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

var bookingIDPattern = regexp.MustCompile(`^BK\d{13}[0-9A-Z]{5}$`)

func newTestService(cfg *config.Config, pub *mockPublisher) BookingService {
	if cfg == nil {
		cfg = &config.Config{Log: logger.Discard()}
	}
	var publisher = pub
	if pub == nil {
		publisher = &mockPublisher{}
	}
	return NewBookingService(
		validator.NewBookingValidator(cfg.Log),
		NewIDGenerator(11, nil),
		publisher,
		cfg,
	)
}

func validRequest() *model.BookingRequest {
	return &model.BookingRequest{
		PropertyID: 1,
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-04",
		Guests:     2,
		TotalPrice: 1200,
		GuestName:  "  Sarah   Johnson ",
		GuestEmail: "Sarah@Example.COM",
		GuestPhone: "+1 (212) 555-1234",
	}
}

func TestSubmit_Success(t *testing.T) {
	pub := &mockPublisher{}
	svc := newTestService(nil, pub)

	resp, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Message != bookingserrors.MessageCreated {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if !bookingIDPattern.MatchString(resp.BookingID) {
		t.Errorf("booking id %q does not match BK<millis><5 chars>", resp.BookingID)
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected one published event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.BookingID != resp.BookingID {
		t.Errorf("event id %q != response id %q", ev.BookingID, resp.BookingID)
	}
	if ev.Booking.GuestName != "Sarah Johnson" {
		t.Errorf("guest name not normalised: %q", ev.Booking.GuestName)
	}
	if ev.Booking.GuestEmail != "Sarah@example.com" {
		t.Errorf("guest email not normalised: %q", ev.Booking.GuestEmail)
	}
	if ev.Booking.GuestPhone != "+12125551234" {
		t.Errorf("guest phone not normalised: %q", ev.Booking.GuestPhone)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	pub := &mockPublisher{}
	svc := newTestService(nil, pub)

	tests := []struct {
		name   string
		mutate func(r *model.BookingRequest)
	}{
		{"property id zero", func(r *model.BookingRequest) { r.PropertyID = 0 }},
		{"no check-in", func(r *model.BookingRequest) { r.CheckIn = "" }},
		{"no check-out", func(r *model.BookingRequest) { r.CheckOut = "" }},
		{"no guests", func(r *model.BookingRequest) { r.Guests = 0 }},
		{"no price", func(r *model.BookingRequest) { r.TotalPrice = 0 }},
		{"no name", func(r *model.BookingRequest) { r.GuestName = "" }},
		{"no email", func(r *model.BookingRequest) { r.GuestEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req)

			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.StatusCode() != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", appErr.StatusCode())
			}
			if appErr.Message != bookingserrors.MessageMissingFields {
				t.Errorf("unexpected message %q", appErr.Message)
			}
		})
	}

	if len(pub.events) != 0 {
		t.Errorf("rejected bookings must not be published, got %d events", len(pub.events))
	}
}

func TestSubmit_ValidationPrecedesDelay(t *testing.T) {
	cfg := &config.Config{Log: logger.Discard(), BookingDelay: time.Hour}
	svc := newTestService(cfg, nil)

	req := validRequest()
	req.GuestEmail = ""

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), req)
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected validation error")
		}
	case <-time.After(time.Second):
		t.Fatal("validation waited for the simulated delay")
	}
}

func TestSubmit_CancelledDuringDelay(t *testing.T) {
	cfg := &config.Config{Log: logger.Discard(), BookingDelay: time.Hour}
	pub := &mockPublisher{}
	svc := newTestService(cfg, pub)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Submit(ctx, validRequest())

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode() != http.StatusGatewayTimeout {
		t.Fatalf("expected timeout AppError, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Error("cancelled bookings must not be published")
	}
}

func TestSubmit_PublishFailureIsNotFatal(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker down")}
	svc := newTestService(nil, pub)

	resp, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("publish failure leaked to caller: %v", err)
	}
	if !resp.Success {
		t.Error("expected success despite publish failure")
	}
}

func TestIDGenerator(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	gen := NewIDGenerator(3, func() time.Time { return now })

	seen := make(map[string]bool)
	for range 200 {
		id := gen.Next()
		if !bookingIDPattern.MatchString(id) {
			t.Fatalf("malformed id %q", id)
		}
		if id[:15] != "BK1700000000123" {
			t.Fatalf("id %q does not embed the clock", id)
		}
		seen[id] = true
	}
	if len(seen) < 190 {
		t.Errorf("suffixes collide too often: %d unique of 200", len(seen))
	}
}
