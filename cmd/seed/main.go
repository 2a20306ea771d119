package main

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/properties/repository"
	"staybook/pkg/config"
)

const JobName = "catalog-seed"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	err := seed(ctx, cfg)
	cfg.GracefulShutdown()
	if err != nil {
		cfg.Log.Fatal("Seeding failed", "error", err)
	}
}

func seed(ctx context.Context, cfg *config.Config) error {
	properties := repository.SampleProperties()
	cfg.Log.Info("Seeding property catalogue",
		"database", cfg.MongoDatabaseName,
		"collection", repository.CollectionName,
		"count", len(properties),
	)

	repo := repository.NewMongoPropertyRepository(cfg)
	if err := repo.Seed(ctx, properties); err != nil {
		return err
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count seeded properties: %w", err)
	}
	cfg.Log.Info("Seeding completed successfully", "count", count)
	return nil
}
