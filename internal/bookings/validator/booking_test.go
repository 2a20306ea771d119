package validator

import (
	"errors"
	"slices"
	"testing"

	"staybook/pkg/logger"
	"staybook/pkg/model"
)

func validRequest() model.BookingRequest {
	return model.BookingRequest{
		PropertyID: 1,
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-04",
		Guests:     2,
		TotalPrice: 1200,
		GuestName:  "Sarah Johnson",
		GuestEmail: "sarah@example.com",
	}
}

func TestBookingValidator_Validate(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	tests := []struct {
		name       string
		mutate     func(r *model.BookingRequest)
		wantFields []string
	}{
		{"valid", func(r *model.BookingRequest) {}, nil},
		{"phone is optional", func(r *model.BookingRequest) { r.GuestPhone = "" }, nil},
		{"property id zero", func(r *model.BookingRequest) { r.PropertyID = 0 }, []string{"propertyId"}},
		{"negative guests pass", func(r *model.BookingRequest) { r.Guests = -1 }, nil},
		{"negative price passes", func(r *model.BookingRequest) { r.TotalPrice = -5 }, nil},
		{"whitespace name passes", func(r *model.BookingRequest) { r.GuestName = " " }, nil},
		{"zero price", func(r *model.BookingRequest) { r.TotalPrice = 0 }, []string{"totalPrice"}},
		{
			name: "several missing",
			mutate: func(r *model.BookingRequest) {
				r.CheckIn = ""
				r.Guests = 0
				r.GuestEmail = ""
			},
			wantFields: []string{"checkIn", "guests", "guestEmail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(&req)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
			if got := errs.Fields(); !slices.Equal(got, tt.wantFields) {
				t.Errorf("fields = %v, want %v", got, tt.wantFields)
			}
		})
	}
}

func TestBookingValidator_NilRequest(t *testing.T) {
	v := NewBookingValidator(logger.Discard())
	if err := v.Validate(nil); err == nil {
		t.Fatal("expected error for nil request")
	}
}

func TestFormValidator_FirstMessageWins(t *testing.T) {
	f := NewFormValidator()

	tests := []struct {
		name   string
		mutate func(r *model.BookingRequest)
		want   string
	}{
		{"valid", func(r *model.BookingRequest) {}, ""},
		{"blank name", func(r *model.BookingRequest) { r.GuestName = "   " }, "Guest name is required"},
		{"blank email", func(r *model.BookingRequest) { r.GuestEmail = "\t" }, "Email is required"},
		{"missing check-in", func(r *model.BookingRequest) { r.CheckIn = "" }, "Check-in date is required"},
		{"missing check-out", func(r *model.BookingRequest) { r.CheckOut = "" }, "Check-out date is required"},
		{"no guests", func(r *model.BookingRequest) { r.Guests = 0 }, "Number of guests must be at least 1"},
		{"negative guests", func(r *model.BookingRequest) { r.Guests = -2 }, "Number of guests must be at least 1"},
		{"free stay", func(r *model.BookingRequest) { r.TotalPrice = 0 }, "Total price must be greater than 0"},
		{
			name: "name reported before price",
			mutate: func(r *model.BookingRequest) {
				r.TotalPrice = 0
				r.GuestName = ""
			},
			want: "Guest name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := f.Validate(req)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if ve.Message != tt.want {
				t.Errorf("message = %q, want %q", ve.Message, tt.want)
			}
		})
	}
}
