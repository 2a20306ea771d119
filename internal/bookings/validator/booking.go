package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Fields lists the offending field names in declaration order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, err := range v {
		fields = append(fields, err.Field)
	}
	return fields
}

// BookingValidator applies the submission check: every required field must
// be present and non-zero.
type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := newValidate()
	log.Debug("Booking validator initialized")
	return &BookingValidator{validate: v}
}

func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if req == nil {
		return ValidationErrors{{Field: "body", Message: "body is required"}}
	}
	return translate(v.validate.Struct(req), func(err validator.FieldError) string {
		return fmt.Sprintf("%s is required", err.Field())
	})
}

// newValidate reports fields by their JSON names.
func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func translate(err error, message func(validator.FieldError) string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}
