package main

import (
	"io"

	"staybook/internal/bookings/events"
	bookingshandler "staybook/internal/bookings/handler"
	bookingsservice "staybook/internal/bookings/service"
	"staybook/internal/bookings/validator"
	propertieshandler "staybook/internal/properties/handler"
	"staybook/internal/properties/repository"
	propertiesservice "staybook/internal/properties/service"
	"staybook/internal/reviews"
	"staybook/pkg/app"
	"staybook/pkg/config"
	"staybook/pkg/contracts"
	"staybook/pkg/kafka"
	kafkaconfig "staybook/pkg/kafka/config"
	kafkamiddleware "staybook/pkg/kafka/middleware"
)

const ServiceName = "storefront"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Storefront service")

	propertyRepo, database := initCatalog(cfg)
	publisher, producer := initPublisher(cfg)

	propertyService := propertiesservice.NewPropertyService(
		propertyRepo,
		reviews.NewGenerator(cfg.RandomSeed),
		cfg,
	)
	bookingService := bookingsservice.NewBookingService(
		validator.NewBookingValidator(cfg.Log),
		bookingsservice.NewIDGenerator(cfg.RandomSeed, nil),
		publisher,
		cfg,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(database,
		propertieshandler.NewPropertyHandler(propertyService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
	)
	if producer != nil {
		serverApp.OnShutdown(producer)
	}
	serverApp.Run()
}

// initCatalog picks the catalogue backend. The returned pinger is nil for the
// in-memory catalogue, which has nothing to ping.
func initCatalog(cfg *config.Config) (repository.PropertyRepository, contracts.Pinger) {
	if !cfg.UsesMongoCatalog() {
		cfg.Log.Info("Serving sample catalogue from memory")
		return repository.NewMemoryPropertyRepository(repository.SampleProperties()), nil
	}

	cfg.SetMongo()
	repo := repository.NewMongoPropertyRepository(cfg)
	cfg.Log.Info("Serving catalogue from MongoDB", "database", cfg.MongoDatabaseName, "collection", repository.CollectionName)
	return repo, repo
}

func initPublisher(cfg *config.Config) (events.Publisher, io.Closer) {
	if !cfg.BookingEventsEnabled {
		cfg.Log.Info("Booking events disabled")
		return events.NopPublisher{}, nil
	}

	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingEventsTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafkamiddleware.LoggingProducerMiddleware(cfg.Log))
	}

	cfg.Log.Info("Booking events enabled", "topic", cfg.BookingEventsTopic)
	return events.NewKafkaPublisher(producer, ServiceName), producer
}
