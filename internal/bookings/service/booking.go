package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/events"
	"staybook/internal/bookings/validator"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/latency"
	"staybook/pkg/middleware"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"
)

const publishTimeout = 5 * time.Second

type BookingService interface {
	Submit(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error)
}

type bookingService struct {
	validator *validator.BookingValidator
	ids       *IDGenerator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	validator *validator.BookingValidator,
	ids *IDGenerator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &bookingService{
		validator: validator,
		ids:       ids,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Submit accepts a booking without storing it. The request is checked for
// missing fields before the simulated delay, and a failure to publish the
// event does not fail the submission.
func (s *bookingService) Submit(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			s.cfg.Log.Warn("Booking rejected",
				"request_id", middleware.RequestIDFromContext(ctx),
				"missing_fields", fieldErrs.Fields(),
			)
			return nil, apperrors.InvalidInput(bookingserrors.MessageMissingFields)
		}
		return nil, apperrors.Internal(bookingserrors.MessageInternalError, err)
	}

	if err := latency.Wait(ctx, s.cfg.BookingDelay); err != nil {
		return nil, apperrors.Timeout("Request timeout")
	}

	event := model.BookingReceivedEvent{
		BookingID:  s.ids.Next(),
		ReceivedAt: time.Now().UTC(),
		Booking:    sanitize(*req),
	}

	s.cfg.Log.Info("New booking received",
		"request_id", middleware.RequestIDFromContext(ctx),
		"booking_id", event.BookingID,
		"property_id", event.Booking.PropertyID,
		"check_in", event.Booking.CheckIn,
		"check_out", event.Booking.CheckOut,
		"guests", event.Booking.Guests,
		"total_price", event.Booking.TotalPrice,
		"guest_name", event.Booking.GuestName,
		"guest_email", sanitizer.MaskEmail(event.Booking.GuestEmail),
	)

	s.publish(ctx, event)

	return &model.BookingResponse{
		Success:   true,
		BookingID: event.BookingID,
		Message:   bookingserrors.MessageCreated,
	}, nil
}

// publish outlives a client that disconnects after the booking is accepted.
func (s *bookingService) publish(ctx context.Context, event model.BookingReceivedEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.BookingReceived(ctx, event); err != nil {
		s.cfg.Log.Error("Failed to publish booking event",
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}

func sanitize(req model.BookingRequest) model.BookingRequest {
	req.GuestName = sanitizer.NormalizeName(req.GuestName)
	req.GuestEmail = sanitizer.NormalizeEmail(req.GuestEmail)
	if req.GuestPhone != "" {
		if phone := sanitizer.NormalizePhone(req.GuestPhone); phone != "" {
			req.GuestPhone = phone
		}
	}
	return req
}
