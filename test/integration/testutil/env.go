package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"staybook/pkg/client"
	"staybook/pkg/model"
)

const DefaultHealthCheckTimeout = 5 * time.Second

// TestEnv points the suite at a running storefront.
type TestEnv struct {
	ServerURL string
}

func NewTestEnv() *TestEnv {
	return &TestEnv{
		ServerURL: getEnv("TEST_SERVER_URL", "http://localhost:8080"),
	}
}

// Setup returns a client for the server, skipping the test when nothing is
// listening there.
func (e *TestEnv) Setup(t *testing.T) *client.Client {
	t.Helper()

	hc := client.NewHttpClient(e.ServerURL)
	if err := hc.WaitForHealthy(context.Background(), DefaultHealthCheckTimeout); err != nil {
		t.Skipf("storefront not reachable at %s: %v", e.ServerURL, err)
	}
	return client.New(e.ServerURL)
}

func ValidBooking() model.BookingRequest {
	return model.BookingRequest{
		PropertyID: 1,
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-04",
		Guests:     2,
		TotalPrice: 1260,
		GuestName:  "Integration Guest",
		GuestEmail: "guest@example.com",
		GuestPhone: "+1 415 555 0100",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
