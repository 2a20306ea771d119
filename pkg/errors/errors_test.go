package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{"plain", NotFound("Property"), "NOT_FOUND: Property not found"},
		{"with cause", Internal("Internal server error", errors.New("no reachable servers")),
			"INTERNAL_ERROR: Internal server error (caused by: no reachable servers)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstructors_StatusAndMessage(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantStatus  int
		wantMessage string
	}{
		{"not found", NotFound("Property"), http.StatusNotFound, "Property not found"},
		{"invalid input", InvalidInput("Invalid property ID"), http.StatusBadRequest, "Invalid property ID"},
		{"method not allowed", MethodNotAllowed(), http.StatusMethodNotAllowed, "Method not allowed"},
		{"too many requests", TooManyRequests("Rate limit exceeded"), http.StatusTooManyRequests, "Rate limit exceeded"},
		{"internal", Internal("Internal server error", nil), http.StatusInternalServerError, "Internal server error"},
		{"timeout", Timeout("Request timeout"), http.StatusGatewayTimeout, "Request timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.StatusCode(), tt.wantStatus)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := Internal("Internal server error", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("listing: %w", NotFound("Property"))
	if got := AsAppError(wrapped); got.StatusCode() != http.StatusNotFound {
		t.Errorf("expected wrapped AppError to be found, got %v", got)
	}

	plain := errors.New("socket closed")
	got := AsAppError(plain)
	if got.StatusCode() != http.StatusInternalServerError || got.Message != "Internal server error" {
		t.Errorf("unexpected fallback %+v", got)
	}
	if !errors.Is(got, plain) {
		t.Error("fallback should keep the cause")
	}
}
