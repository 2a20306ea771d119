package validator

import (
	"errors"
	"strings"

	"staybook/pkg/model"

	"github.com/go-playground/validator/v10"
)

// bookingForm orders its fields the way the booking form reports problems;
// only the first failing rule is surfaced.
type bookingForm struct {
	GuestName  string  `json:"guestName" validate:"not_blank"`
	GuestEmail string  `json:"guestEmail" validate:"not_blank"`
	CheckIn    string  `json:"checkIn" validate:"required"`
	CheckOut   string  `json:"checkOut" validate:"required"`
	Guests     int     `json:"guests" validate:"min=1"`
	TotalPrice float64 `json:"totalPrice" validate:"gt=0"`
}

var formMessages = map[string]string{
	"guestName":  "Guest name is required",
	"guestEmail": "Email is required",
	"checkIn":    "Check-in date is required",
	"checkOut":   "Check-out date is required",
	"guests":     "Number of guests must be at least 1",
	"totalPrice": "Total price must be greater than 0",
}

// FormValidator runs the stricter checks the booking form applies before
// submitting. Blank names and emails fail here but pass the server check.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := newValidate()
	// RegisterValidation only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("not_blank", notBlank)
	return &FormValidator{validate: v}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate returns the first failing rule as a ValidationError, or nil.
func (f *FormValidator) Validate(req model.BookingRequest) error {
	form := bookingForm{
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
	}

	err := translate(f.validate.Struct(form), func(fe validator.FieldError) string {
		return formMessages[fe.Field()]
	})
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[0]
	}
	return err
}
