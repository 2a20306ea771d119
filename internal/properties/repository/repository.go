package repository

import (
	"context"

	"staybook/pkg/model"
)

// PropertyRepository serves the catalogue in its canonical order. A
// property's position in that order is its public id.
type PropertyRepository interface {
	FindAll(ctx context.Context) ([]model.Property, error)
	FindByIndex(ctx context.Context, index int) (*model.Property, error)
	Count(ctx context.Context) (int, error)
}
