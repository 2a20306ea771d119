package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	propertieserrors "staybook/internal/properties/errors"
	"staybook/pkg/config"
	"staybook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollectionName = "Properties"
)

type propertyDocument struct {
	Index          int `bson:"index"`
	model.Property `bson:",inline"`
}

type MongoPropertyRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoPropertyRepository(cfg *config.Config) *MongoPropertyRepository {
	db := cfg.Mongo.Database(cfg.MongoDatabaseName)
	return &MongoPropertyRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// withTimeout bounds ctx by timeout unless it already carries a sooner deadline.
func (r *MongoPropertyRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoPropertyRepository) FindAll(ctx context.Context) ([]model.Property, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "index", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []propertyDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}

	properties := make([]model.Property, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, doc.Property)
	}
	return properties, nil
}

func (r *MongoPropertyRepository) FindByIndex(ctx context.Context, index int) (*model.Property, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: index %d", propertieserrors.ErrNotFound, index)
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var doc propertyDocument
	err := r.collection.FindOne(ctx, bson.M{"index": index}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: index %d", propertieserrors.ErrNotFound, index)
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return &doc.Property, nil
}

func (r *MongoPropertyRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return int(n), nil
}

// Seed replaces the catalogue with properties, keyed by their position, and
// removes any documents beyond the new length.
func (r *MongoPropertyRepository) Seed(ctx context.Context, properties []model.Property) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "index", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("index_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	writes := make([]mongo.WriteModel, 0, len(properties))
	for i, p := range properties {
		p.ID = nil
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"index": i}).
			SetReplacement(propertyDocument{Index: i, Property: p}).
			SetUpsert(true))
	}

	if len(writes) > 0 {
		if _, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
			return fmt.Errorf("failed to upsert properties: %w", err)
		}
	}

	if _, err := r.collection.DeleteMany(ctx, bson.M{"index": bson.M{"$gte": len(properties)}}); err != nil {
		return fmt.Errorf("failed to prune properties: %w", err)
	}
	return nil
}

func (r *MongoPropertyRepository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, readpref.Primary())
}
