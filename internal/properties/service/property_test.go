package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	propertieserrors "staybook/internal/properties/errors"
	"staybook/internal/properties/repository"
	"staybook/internal/reviews"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"
)

// ────────────────────────────────────────────────
// Mock repository for testing
// ────────────────────────────────────────────────

type mockPropertyRepository struct {
	findAllFunc     func(ctx context.Context) ([]model.Property, error)
	findByIndexFunc func(ctx context.Context, index int) (*model.Property, error)
}

func (m *mockPropertyRepository) FindAll(ctx context.Context) ([]model.Property, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []model.Property{}, nil
}

func (m *mockPropertyRepository) FindByIndex(ctx context.Context, index int) (*model.Property, error) {
	if m.findByIndexFunc != nil {
		return m.findByIndexFunc(ctx, index)
	}
	return nil, propertieserrors.ErrNotFound
}

func (m *mockPropertyRepository) Count(ctx context.Context) (int, error) {
	return 0, nil
}

func newTestConfig() *config.Config {
	return &config.Config{Log: logger.Discard()}
}

func newTestService(repo repository.PropertyRepository, cfg *config.Config) PropertyService {
	return NewPropertyService(repo, reviews.NewGenerator(1), cfg)
}

func appErrorOf(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	return appErrorOf(t, err).StatusCode()
}

// ────────────────────────────────────────────────
// List
// ────────────────────────────────────────────────

func TestList_ReturnsFullCatalogueInOrder(t *testing.T) {
	svc := newTestService(repository.NewMemoryPropertyRepository(repository.SampleProperties()), newTestConfig())

	got, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := repository.SampleProperties()
	if len(got) != len(want) {
		t.Fatalf("got %d properties, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, want[i].Name)
		}
		if got[i].ID != nil {
			t.Errorf("position %d: list entries should not carry an id", i)
		}
	}
}

func TestList_FiltersByCategory(t *testing.T) {
	svc := newTestService(repository.NewMemoryPropertyRepository(repository.SampleProperties()), newTestConfig())

	got, err := svc.List(context.Background(), "Beachfront")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected at least one beachfront property")
	}
	for _, p := range got {
		if !p.HasCategory("Beachfront") {
			t.Errorf("%s does not have the Beachfront category", p.Name)
		}
	}

	none, err := svc.List(context.Background(), "Igloo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", none)
	}
}

func TestList_RepositoryFailure(t *testing.T) {
	repo := &mockPropertyRepository{
		findAllFunc: func(ctx context.Context) ([]model.Property, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}
	svc := newTestService(repo, newTestConfig())

	_, err := svc.List(context.Background(), "")
	if status := statusOf(t, err); status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
}

func TestList_HonoursDelayAndCancellation(t *testing.T) {
	cfg := newTestConfig()
	cfg.ListDelay = time.Hour
	svc := newTestService(repository.NewMemoryPropertyRepository(repository.SampleProperties()), cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.List(ctx, "")
	if status := statusOf(t, err); status != http.StatusGatewayTimeout {
		t.Errorf("expected 504, got %d", status)
	}
}

// ────────────────────────────────────────────────
// GetByIndex
// ────────────────────────────────────────────────

func TestGetByIndex(t *testing.T) {
	samples := repository.SampleProperties()
	svc := newTestService(repository.NewMemoryPropertyRepository(samples), newTestConfig())

	tests := []struct {
		name       string
		index      int
		wantStatus int
	}{
		{"first", 0, http.StatusOK},
		{"last", len(samples) - 1, http.StatusOK},
		{"negative", -1, http.StatusNotFound},
		{"past end", len(samples), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetByIndex(context.Background(), tt.index)
			if tt.wantStatus != http.StatusOK {
				if status := statusOf(t, err); status != tt.wantStatus {
					t.Errorf("expected %d, got %d", tt.wantStatus, status)
				}
				if msg := appErrorOf(t, err).Message; msg != "Property not found" {
					t.Errorf("unexpected message %q", msg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID == nil || *got.ID != tt.index {
				t.Errorf("expected id %d, got %v", tt.index, got.ID)
			}
			if got.Name != samples[tt.index].Name {
				t.Errorf("got %q, want %q", got.Name, samples[tt.index].Name)
			}
		})
	}
}

// ────────────────────────────────────────────────
// Reviews
// ────────────────────────────────────────────────

func TestReviews_AnyNonNegativeID(t *testing.T) {
	svc := newTestService(repository.NewMemoryPropertyRepository(nil), newTestConfig())

	for _, id := range []int{0, 3, 999} {
		resp, err := svc.Reviews(context.Background(), id)
		if err != nil {
			t.Fatalf("id %d: unexpected error: %v", id, err)
		}
		if resp.TotalReviews != len(resp.Reviews) {
			t.Errorf("id %d: totalReviews %d != len(reviews) %d", id, resp.TotalReviews, len(resp.Reviews))
		}
		if resp.TotalReviews < reviews.MinReviews || resp.TotalReviews > reviews.MaxReviews {
			t.Errorf("id %d: unexpected review count %d", id, resp.TotalReviews)
		}
		if resp.AverageRating < reviews.MinRating || resp.AverageRating > reviews.MaxRating {
			t.Errorf("id %d: average %v outside rating range", id, resp.AverageRating)
		}
	}
}

func TestReviews_NegativeID(t *testing.T) {
	svc := newTestService(repository.NewMemoryPropertyRepository(nil), newTestConfig())

	_, err := svc.Reviews(context.Background(), -1)
	if status := statusOf(t, err); status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if msg := appErrorOf(t, err).Message; msg != "Invalid property ID" {
		t.Errorf("unexpected message %q", msg)
	}
}

// ────────────────────────────────────────────────
// Quote
// ────────────────────────────────────────────────

func TestQuote(t *testing.T) {
	catalogue := []model.Property{
		{Name: "No Discount", Price: 100},
		{Name: "Discounted", Price: 200, Discount: "25"},
	}
	svc := newTestService(repository.NewMemoryPropertyRepository(catalogue), newTestConfig())

	tests := []struct {
		name         string
		index        int
		nights       int
		wantSubtotal float64
		wantDiscount float64
		wantTotal    float64
	}{
		{"no discount", 0, 3, 300, 0, 365},
		{"with discount", 1, 2, 400, 100, 365},
		{"single night", 0, 1, 100, 0, 165},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := svc.Quote(context.Background(), tt.index, tt.nights)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.BookingFee != BookingFee {
				t.Errorf("booking fee = %v, want %v", q.BookingFee, BookingFee)
			}
			if q.TotalNights != tt.nights {
				t.Errorf("nights = %d, want %d", q.TotalNights, tt.nights)
			}
			if q.Subtotal != tt.wantSubtotal || q.DiscountAmount != tt.wantDiscount || q.Total != tt.wantTotal {
				t.Errorf("got subtotal=%v discount=%v total=%v, want %v/%v/%v",
					q.Subtotal, q.DiscountAmount, q.Total, tt.wantSubtotal, tt.wantDiscount, tt.wantTotal)
			}
		})
	}
}

func TestQuote_Errors(t *testing.T) {
	svc := newTestService(repository.NewMemoryPropertyRepository([]model.Property{{Name: "Only", Price: 10}}), newTestConfig())

	if _, err := svc.Quote(context.Background(), 0, 0); statusOf(t, err) != http.StatusBadRequest {
		t.Errorf("zero nights should be a bad request")
	}
	if _, err := svc.Quote(context.Background(), 5, 3); statusOf(t, err) != http.StatusNotFound {
		t.Errorf("unknown index should be not found")
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	svc := newTestService(repository.NewMemoryPropertyRepository(nil), newTestConfig())

	got := svc.Categories()
	got[0] = "changed"

	if svc.Categories()[0] == "changed" {
		t.Error("Categories leaked the shared slice")
	}
}
