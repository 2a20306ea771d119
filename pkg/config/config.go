package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	mongodb "staybook/pkg/db/mongo"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

const DotEnvFile = ".env"

var mongoURIRegex = regexp.MustCompile(`^mongodb(\+srv)?://`)

type Config struct {
	Port string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	ListDelay     time.Duration
	PropertyDelay time.Duration
	ReviewsDelay  time.Duration
	BookingDelay  time.Duration
	RandomSeed    int64

	CatalogSource     string
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration
	IdempotencyTTL    time.Duration
	TrustedProxies    string

	BookingEventsEnabled bool
	BookingEventsTopic   string

	Log   *logger.Logger
	Mongo *mongo.Client
}

func Load(serviceName string) *Config {
	dotEnvErr := godotenv.Load(DotEnvFile)

	cfg := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})

	if dotEnvErr != nil && !errors.Is(dotEnvErr, fs.ErrNotExist) {
		cfg.Log.Warn("Failed to read .env file", "file", DotEnvFile, "error", dotEnvErr)
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads every setting from the environment, falling back to defaults.
// The logger is left nil.
func FromEnv() *Config {
	return &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		ListDelay:     getEnvDuration(EnvListDelay, DefaultListDelay),
		PropertyDelay: getEnvDuration(EnvPropertyDelay, DefaultPropertyDelay),
		ReviewsDelay:  getEnvDuration(EnvReviewsDelay, DefaultReviewsDelay),
		BookingDelay:  getEnvDuration(EnvBookingDelay, DefaultBookingDelay),
		RandomSeed:    getEnvInt64(EnvRandomSeed, 0),

		CatalogSource:     strings.ToLower(getEnvStr(EnvCatalogSource, DefaultCatalogSource)),
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		IdempotencyTTL:    getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		TrustedProxies:    getEnvStr(EnvTrustedProxies, ""),

		BookingEventsEnabled: getEnvBool(EnvBookingEventsEnabled, DefaultBookingEventsEnabled),
		BookingEventsTopic:   getEnvStr(EnvBookingEventsTopic, DefaultBookingEventsTopic),
	}
}

// SetMongo connects to MongoDB and keeps the client on the config.
func (cfg *Config) SetMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB",
			"error", err,
			"uri", redactMongoURI(cfg.MongoURI),
		)
	}

	cfg.Log.Info("Successfully connected to MongoDB", "database", cfg.MongoDatabaseName)
	cfg.Mongo = client
}

func (cfg *Config) UsesMongoCatalog() bool {
	return cfg.CatalogSource == CatalogMongo
}

func (cfg *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.CatalogSource != CatalogMemory && cfg.CatalogSource != CatalogMongo {
		problems = append(problems, fmt.Sprintf("CatalogSource must be one of [%s, %s], got: %s", CatalogMemory, CatalogMongo, cfg.CatalogSource))
	}

	if cfg.UsesMongoCatalog() {
		if cfg.MongoURI == "" {
			problems = append(problems, "MongoURI cannot be empty")
		} else if !mongoURIRegex.MatchString(cfg.MongoURI) {
			problems = append(problems, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			problems = append(problems, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			problems = append(problems, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	}

	for name, d := range map[string]time.Duration{
		"RequestTimeout":  cfg.RequestTimeout,
		"ReadTimeout":     cfg.ReadTimeout,
		"WriteTimeout":    cfg.WriteTimeout,
		"IdleTimeout":     cfg.IdleTimeout,
		"ShutdownTimeout": cfg.ShutdownTimeout,
		"RateLimitWindow": cfg.RateLimitWindow,
		"IdempotencyTTL":  cfg.IdempotencyTTL,
	} {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got: %s", name, d))
		}
	}

	for name, d := range map[string]time.Duration{
		"ListDelay":     cfg.ListDelay,
		"PropertyDelay": cfg.PropertyDelay,
		"ReviewsDelay":  cfg.ReviewsDelay,
		"BookingDelay":  cfg.BookingDelay,
	} {
		if d < 0 {
			problems = append(problems, fmt.Sprintf("%s cannot be negative, got: %s", name, d))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		problems = append(problems, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		problems = append(problems, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if _, err := httputil.ParseTrustedProxies(cfg.TrustedProxies); err != nil {
		problems = append(problems, fmt.Sprintf("TrustedProxies: %v", err))
	}
	if cfg.BookingEventsEnabled && cfg.BookingEventsTopic == "" {
		problems = append(problems, "BookingEventsTopic cannot be empty when booking events are enabled")
	}

	if len(problems) > 0 {
		// map iteration above is unordered
		slices.Sort(problems)
		errMsg := "Configuration validation failed:\n"
		for i, err := range problems {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"list_delay", cfg.ListDelay,
		"property_delay", cfg.PropertyDelay,
		"reviews_delay", cfg.ReviewsDelay,
		"booking_delay", cfg.BookingDelay,
		"random_seed_set", cfg.RandomSeed != 0,
		"catalog_source", cfg.CatalogSource,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"trusted_proxies", cfg.TrustedProxies,
		"booking_events_enabled", cfg.BookingEventsEnabled,
		"booking_events_topic", cfg.BookingEventsTopic,
	)
}

func (cfg *Config) GracefulShutdown() {
	if cfg.Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := cfg.Mongo.Disconnect(ctx); err != nil {
		cfg.Log.Error("Failed to disconnect from MongoDB", "error", err)
		return
	}
	cfg.Log.Info("Disconnected from MongoDB")
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
