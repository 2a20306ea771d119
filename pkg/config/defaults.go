package config

import "time"

const (
	CatalogMemory = "memory"
	CatalogMongo  = "mongo"
)

const (
	DefaultPort = "8080"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultListDelay     = 500 * time.Millisecond
	DefaultPropertyDelay = 300 * time.Millisecond
	DefaultReviewsDelay  = 400 * time.Millisecond
	DefaultBookingDelay  = 500 * time.Millisecond

	DefaultCatalogSource     = CatalogMemory
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "staybook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute
	DefaultIdempotencyTTL    = 24 * time.Hour

	DefaultBookingEventsEnabled = false
	DefaultBookingEventsTopic   = "bookings.received"

	DefaultLogLevel = "info"
)
