package repository

import (
	"context"
	"fmt"

	propertieserrors "staybook/internal/properties/errors"
	"staybook/pkg/model"
)

type memoryPropertyRepository struct {
	properties []model.Property
}

// NewMemoryPropertyRepository serves a fixed catalogue. The slice is copied so
// callers cannot mutate the served data afterwards.
func NewMemoryPropertyRepository(properties []model.Property) PropertyRepository {
	return &memoryPropertyRepository{properties: cloneAll(properties)}
}

func (r *memoryPropertyRepository) FindAll(ctx context.Context) ([]model.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneAll(r.properties), nil
}

func (r *memoryPropertyRepository) FindByIndex(ctx context.Context, index int) (*model.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(r.properties) {
		return nil, fmt.Errorf("%w: index %d", propertieserrors.ErrNotFound, index)
	}
	p := r.properties[index].Clone()
	return &p, nil
}

func (r *memoryPropertyRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.properties), nil
}

func cloneAll(in []model.Property) []model.Property {
	out := make([]model.Property, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
