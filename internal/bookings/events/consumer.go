package events

import (
	"context"

	"staybook/pkg/kafka"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"
)

// LogHandler records each booking-received event in the log. Messages that
// are not booking events, or do not decode, are permanent failures.
func LogHandler(log *logger.Logger) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		if eventType := msg.GetEventType(); eventType != EventTypeBookingReceived {
			return kafka.NewPermanentError("unexpected event type "+eventType, nil)
		}

		var event model.BookingReceivedEvent
		if err := msg.DecodeValue(&event); err != nil {
			return kafka.NewPermanentError("malformed booking event", err)
		}

		log.Info("Booking received",
			"booking_id", event.BookingID,
			"property_id", event.Booking.PropertyID,
			"check_in", event.Booking.CheckIn,
			"check_out", event.Booking.CheckOut,
			"guests", event.Booking.Guests,
			"total_price", event.Booking.TotalPrice,
			"guest_email", sanitizer.MaskEmail(event.Booking.GuestEmail),
			"received_at", event.ReceivedAt,
			"correlation_id", msg.GetCorrelationID(),
		)
		return nil
	}
}
