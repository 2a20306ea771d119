package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvListDelay     = "LIST_DELAY"
	EnvPropertyDelay = "PROPERTY_DELAY"
	EnvReviewsDelay  = "REVIEWS_DELAY"
	EnvBookingDelay  = "BOOKING_DELAY"
	EnvRandomSeed    = "REVIEW_SEED"

	EnvCatalogSource     = "CATALOG_SOURCE"
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"
	EnvIdempotencyTTL    = "IDEMPOTENCY_TTL"
	EnvTrustedProxies    = "TRUSTED_PROXIES"

	EnvBookingEventsEnabled = "BOOKING_EVENTS_ENABLED"
	EnvBookingEventsTopic   = "BOOKING_EVENTS_TOPIC"
)
