package service

import (
	"context"
	"errors"
	"math"
	"slices"
	"time"

	propertieserrors "staybook/internal/properties/errors"
	"staybook/internal/properties/repository"
	"staybook/internal/reviews"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/latency"
	"staybook/pkg/model"
)

const (
	BookingFee    = 65
	DefaultNights = 3
)

type PropertyService interface {
	List(ctx context.Context, category string) ([]model.Property, error)
	GetByIndex(ctx context.Context, index int) (*model.Property, error)
	Reviews(ctx context.Context, propertyID int) (*model.ReviewsResponse, error)
	Quote(ctx context.Context, index int, nights int) (*model.Quote, error)
	Categories() []string
}

type propertyService struct {
	repo      repository.PropertyRepository
	generator *reviews.Generator
	cfg       *config.Config
}

func NewPropertyService(
	repo repository.PropertyRepository,
	generator *reviews.Generator,
	cfg *config.Config,
) PropertyService {
	return &propertyService{
		repo:      repo,
		generator: generator,
		cfg:       cfg,
	}
}

// List returns the catalogue in order, or only the properties tagged with
// category when it is non-empty.
func (s *propertyService) List(ctx context.Context, category string) ([]model.Property, error) {
	if err := s.wait(ctx, s.cfg.ListDelay); err != nil {
		return nil, err
	}

	properties, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list properties", "error", err)
		return nil, apperrors.Internal("Internal server error", err)
	}

	if category == "" {
		return properties, nil
	}

	filtered := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if p.HasCategory(category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *propertyService) GetByIndex(ctx context.Context, index int) (*model.Property, error) {
	if err := s.wait(ctx, s.cfg.PropertyDelay); err != nil {
		return nil, err
	}

	property, err := s.find(ctx, index)
	if err != nil {
		return nil, err
	}

	withID := property.WithID(index)
	return &withID, nil
}

// Reviews generates a fresh mock review set. Any non-negative id is accepted,
// whether or not a property exists at that index.
func (s *propertyService) Reviews(ctx context.Context, propertyID int) (*model.ReviewsResponse, error) {
	if propertyID < 0 {
		return nil, apperrors.InvalidInput("Invalid property ID")
	}

	if err := s.wait(ctx, s.cfg.ReviewsDelay); err != nil {
		return nil, err
	}

	resp := reviews.Summarize(s.generator.Generate(propertyID))
	return &resp, nil
}

// Quote prices a stay of nights at the property, applying its discount and
// adding the booking fee.
func (s *propertyService) Quote(ctx context.Context, index int, nights int) (*model.Quote, error) {
	if nights <= 0 {
		return nil, apperrors.InvalidInput(propertieserrors.ErrInvalidNights.Error())
	}

	if err := s.wait(ctx, s.cfg.PropertyDelay); err != nil {
		return nil, err
	}

	property, err := s.find(ctx, index)
	if err != nil {
		return nil, err
	}

	subtotal := property.Price * float64(nights)
	discountAmount := 0.0
	if pct, ok := property.DiscountPercent(); ok {
		discountAmount = roundCents(subtotal * pct / 100)
	}

	return &model.Quote{
		PropertyName:   property.Name,
		Price:          property.Price,
		Discount:       property.Discount,
		BookingFee:     BookingFee,
		TotalNights:    nights,
		Subtotal:       roundCents(subtotal),
		DiscountAmount: discountAmount,
		Total:          roundCents(subtotal - discountAmount + BookingFee),
	}, nil
}

func (s *propertyService) Categories() []string {
	return slices.Clone(repository.Categories)
}

func (s *propertyService) find(ctx context.Context, index int) (*model.Property, error) {
	property, err := s.repo.FindByIndex(ctx, index)
	if err != nil {
		if errors.Is(err, propertieserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Property")
		}
		s.cfg.Log.Error("Failed to get property by index",
			"index", index,
			"error", err,
		)
		return nil, apperrors.Internal("Internal server error", err)
	}
	return property, nil
}

func (s *propertyService) wait(ctx context.Context, d time.Duration) error {
	if err := latency.Wait(ctx, d); err != nil {
		return apperrors.Timeout("Request timeout")
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
