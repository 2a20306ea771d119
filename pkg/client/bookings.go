package client

import (
	"context"
	"fmt"
	"net/http"

	"staybook/pkg/model"
)

const BookingsPath = "/api/bookings"

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(httpClient *HttpClient) *BookingClient {
	return &BookingClient{httpClient: httpClient}
}

// Create submits a booking. A non-empty idempotencyKey makes retries of the
// same submission return the first confirmation.
func (c *BookingClient) Create(ctx context.Context, req model.BookingRequest, idempotencyKey string) (*model.BookingResponse, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}

	resp, err := c.httpClient.POSTWithHeaders(ctx, BookingsPath, req, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to submit booking: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, newAPIError(resp)
	}

	var booking model.BookingResponse
	if err := resp.DecodeJSON(&booking); err != nil {
		return nil, fmt.Errorf("failed to decode booking response: %w", err)
	}
	return &booking, nil
}
