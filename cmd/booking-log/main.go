package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"staybook/internal/bookings/events"
	"staybook/pkg/config"
	"staybook/pkg/kafka"
	kafkaconfig "staybook/pkg/kafka/config"
	kafkamiddleware "staybook/pkg/kafka/middleware"
)

const ServiceName = "booking-log"

func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.BookingEventsTopic, events.LogHandler(cfg.Log), cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		consumer.Use(kafkamiddleware.LoggingConsumerMiddleware(cfg.Log))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Consuming booking events", "topic", cfg.BookingEventsTopic, "group", kafkaCfg.ConsumerGroup)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped unexpectedly", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close Kafka consumer", "error", err)
	}
	cfg.Log.Info("Booking log stopped")
}
