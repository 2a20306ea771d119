package repository

import (
	"context"
	"errors"
	"testing"

	propertieserrors "staybook/internal/properties/errors"
	"staybook/pkg/model"
)

func TestMemoryRepository_FindByIndex(t *testing.T) {
	repo := NewMemoryPropertyRepository(SampleProperties())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	tests := []struct {
		name    string
		index   int
		wantErr error
	}{
		{"first", 0, nil},
		{"last", count - 1, nil},
		{"negative", -1, propertieserrors.ErrNotFound},
		{"one past end", count, propertieserrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := repo.FindByIndex(ctx, tt.index)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name != sampleProperties[tt.index].Name {
				t.Errorf("got %q, want %q", p.Name, sampleProperties[tt.index].Name)
			}
		})
	}
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	source := []model.Property{{Name: "A", Category: []string{"Beachfront"}}}
	repo := NewMemoryPropertyRepository(source)
	ctx := context.Background()

	source[0].Name = "mutated"

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	all[0].Category[0] = "mutated"

	again, _ := repo.FindByIndex(ctx, 0)
	if again.Name != "A" || again.Category[0] != "Beachfront" {
		t.Errorf("repository data was mutated through a returned value: %+v", again)
	}
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryPropertyRepository(SampleProperties())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.FindAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSampleProperties_UseKnownCategories(t *testing.T) {
	known := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	for i, p := range SampleProperties() {
		if p.ID != nil {
			t.Errorf("sample %d should not carry an id", i)
		}
		for _, c := range p.Category {
			if !known[c] {
				t.Errorf("sample %d (%s) uses unknown category %q", i, p.Name, c)
			}
		}
	}
}
