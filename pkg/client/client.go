package client

import (
	"context"
	"errors"
	"fmt"

	"staybook/internal/bookings/validator"
	"staybook/pkg/model"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Client is the storefront API as the pages use it.
type Client struct {
	Properties *PropertyClient
	Bookings   *BookingClient

	form *validator.FormValidator
}

func New(baseURL string) *Client {
	httpClient := NewHttpClient(baseURL)
	return &Client{
		Properties: NewPropertyClient(httpClient),
		Bookings:   NewBookingClient(httpClient),
		form:       validator.NewFormValidator(),
	}
}

// PropertyDetails is what the property page renders.
type PropertyDetails struct {
	Property model.Property
	Reviews  model.ReviewsResponse
}

// FetchPropertyDetails loads a property and its reviews concurrently. Either
// failure fails the whole load.
func (c *Client) FetchPropertyDetails(ctx context.Context, id int) (*PropertyDetails, error) {
	g, ctx := errgroup.WithContext(ctx)

	var property *model.Property
	var reviews *model.ReviewsResponse
	g.Go(func() error {
		var err error
		property, err = c.Properties.GetByID(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = c.Properties.GetReviews(ctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &PropertyDetails{Property: *property, Reviews: *reviews}, nil
}

// FormError is the first failing booking form rule.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

// ValidateBookingForm applies the form checks the booking page runs before
// submitting. It returns a *FormError for the first failing field.
func (c *Client) ValidateBookingForm(req model.BookingRequest) error {
	err := c.form.Validate(req)
	if err == nil {
		return nil
	}
	var ve validator.ValidationError
	if errors.As(err, &ve) {
		return &FormError{Field: ve.Field, Message: ve.Message}
	}
	return fmt.Errorf("failed to validate booking form: %w", err)
}

// SubmitBooking validates the form and, when it passes, submits it under a
// fresh idempotency key.
func (c *Client) SubmitBooking(ctx context.Context, req model.BookingRequest) (*model.BookingResponse, error) {
	if err := c.ValidateBookingForm(req); err != nil {
		return nil, err
	}
	return c.Bookings.Create(ctx, req, uuid.NewString())
}
