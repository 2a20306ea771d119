package model

import "time"

// BookingRequest is the body of a booking submission. The `required` tags
// reject zero values only, so negative guests or prices still pass.
type BookingRequest struct {
	PropertyID int     `json:"propertyId" validate:"required"`
	CheckIn    string  `json:"checkIn" validate:"required"`
	CheckOut   string  `json:"checkOut" validate:"required"`
	Guests     int     `json:"guests" validate:"required"`
	TotalPrice float64 `json:"totalPrice" validate:"required"`
	GuestName  string  `json:"guestName" validate:"required"`
	GuestEmail string  `json:"guestEmail" validate:"required"`
	GuestPhone string  `json:"guestPhone,omitempty"`
}

type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Message   string `json:"message"`
}

// BookingReceivedEvent is published once per accepted submission.
type BookingReceivedEvent struct {
	BookingID  string         `json:"bookingId"`
	ReceivedAt time.Time      `json:"receivedAt"`
	Booking    BookingRequest `json:"booking"`
}
