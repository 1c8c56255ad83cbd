package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/services"
	"github.com/LONJEZ/Delivery-app/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Storage selects the repositories: "postgres" or "memory".
	Storage string

	// RedisURL enables the Redis tracking cache. Empty keeps the cache in process.
	RedisURL         string
	TrackingCacheTTL time.Duration

	JWTSecret string

	DispatchThreshold    kernel.Charge
	AutoDispatchSchedule string
	// AutoDispatchLocation is where the job sends parcels from. Empty disables the job.
	AutoDispatchLocation string

	LogLevel slog.Level
}

var loadEnvOnce sync.Once

// LoadConfig reads the configuration from the environment after merging in
// a .env file, if there is one.
func LoadConfig() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load(".env")
	})

	config := Config{
		HTTPPort:             envOr("HTTP_PORT", "8080"),
		DBHost:               envOr("DB_HOST", "localhost"),
		DBPort:               envOr("DB_PORT", "5432"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               envOr("DB_NAME", "parcels"),
		DBSslMode:            envOr("DB_SSLMODE", "disable"),
		Storage:              strings.ToLower(envOr("STORAGE", StoragePostgres)),
		RedisURL:             os.Getenv("REDIS_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		AutoDispatchSchedule: envOr("AUTO_DISPATCH_SCHEDULE", jobs.DefaultAutoDispatchSchedule),
		AutoDispatchLocation: envOr("AUTO_DISPATCH_LOCATION", jobs.DefaultAutoDispatchLocation),
		DispatchThreshold:    services.DefaultDispatchThreshold,
	}

	var errList []error

	if v := os.Getenv("DISPATCH_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errList = append(errList, fmt.Errorf("DISPATCH_THRESHOLD: %w", err))
		}
		config.DispatchThreshold = kernel.Charge(threshold)
	}

	if v := os.Getenv("TRACKING_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			errList = append(errList, fmt.Errorf("TRACKING_CACHE_TTL: %w", err))
		}
		config.TrackingCacheTTL = ttl
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := config.LogLevel.UnmarshalText([]byte(v)); err != nil {
			errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}

	if config.Storage != StoragePostgres && config.Storage != StorageMemory {
		errList = append(errList, fmt.Errorf("STORAGE: unknown storage %q", config.Storage))
	}

	if config.JWTSecret == "" {
		errList = append(errList, errors.New("JWT_SECRET is required"))
	}

	return config, errors.Join(errList...)
}

// envOr returns the variable's value, or fallback when it is unset.
// An explicitly empty value is kept.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
