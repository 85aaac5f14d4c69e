// Package config loads application configuration from environment
// variables and validates it at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logger   LoggerConfig
	Search   SearchConfig
	Matching MatchingConfig
}

// DatabaseConfig holds the search-result cache database settings.
type DatabaseConfig struct {
	URL            string        // Required for the API server
	MigrationsPath string        // Default: "migrations"
	HealthTimeout  time.Duration // Default: 5s
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        // Default: "127.0.0.1"
	Port            int           // Default: 8080
	ShutdownTimeout time.Duration // Default: 30s
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level       string // Default: "info" (trace, debug, info, warn, error, fatal)
	Environment string // production|development|test (affects format)
}

// SearchConfig holds candidate-search settings.
type SearchConfig struct {
	Endpoint    string        // Search endpoint base URL
	MaxResults  int           // Default: 10
	Timeout     time.Duration // Per-request timeout, default 10s
	MaxAttempts int           // Retry attempts for transient failures, default 3
	CacheTTL    time.Duration // How long cached results stay fresh, default 24h
}

// MatchingConfig holds scoring weight and threshold overrides. Values
// here are validated the same way the matcher validates them; invalid
// values fail at startup, never mid-batch.
type MatchingConfig struct {
	EmailWeight      float64
	NameWeight       float64
	CompanyWeight    float64
	LocationWeight   float64
	JobTitleWeight   float64
	Algorithm        string // "jaro-winkler" or "edit-ratio"
	NameThreshold    float64
	CompanyThreshold float64
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed for %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Constants for default values
const (
	DefaultMigrationsPath     = "migrations"
	DefaultServerHost         = "127.0.0.1"
	DefaultServerPort         = 8080
	DefaultShutdownTimeout    = 30 * time.Second
	DefaultHealthCheckTimeout = 5 * time.Second
	DefaultLogLevel           = "info"
	DefaultEnvironment        = "development"
	DefaultSearchMaxResults   = 10
	DefaultSearchTimeout      = 10 * time.Second
	DefaultSearchMaxAttempts  = 3
	DefaultCacheTTL           = 24 * time.Hour
	DefaultAlgorithm          = "jaro-winkler"
)

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MigrationsPath: getEnv("MIGRATIONS_PATH", DefaultMigrationsPath),
			HealthTimeout:  DefaultHealthCheckTimeout,
		},
		Server: ServerConfig{
			Host:            getEnv("HOST", DefaultServerHost),
			Port:            getEnvAsInt("PORT", DefaultServerPort),
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", DefaultLogLevel),
			Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		},
		Search: SearchConfig{
			Endpoint:    getEnv("SEARCH_ENDPOINT", ""),
			MaxResults:  getEnvAsInt("SEARCH_MAX_RESULTS", DefaultSearchMaxResults),
			Timeout:     getEnvAsDuration("SEARCH_TIMEOUT", DefaultSearchTimeout),
			MaxAttempts: getEnvAsInt("SEARCH_MAX_ATTEMPTS", DefaultSearchMaxAttempts),
			CacheTTL:    getEnvAsDuration("SEARCH_CACHE_TTL", DefaultCacheTTL),
		},
		Matching: MatchingConfig{
			EmailWeight:      getEnvAsFloat("MATCH_EMAIL_WEIGHT", 50),
			NameWeight:       getEnvAsFloat("MATCH_NAME_WEIGHT", 30),
			CompanyWeight:    getEnvAsFloat("MATCH_COMPANY_WEIGHT", 15),
			LocationWeight:   getEnvAsFloat("MATCH_LOCATION_WEIGHT", 10),
			JobTitleWeight:   getEnvAsFloat("MATCH_JOB_TITLE_WEIGHT", 5),
			Algorithm:        getEnv("MATCH_ALGORITHM", DefaultAlgorithm),
			NameThreshold:    getEnvAsFloat("MATCH_NAME_THRESHOLD", 0.7),
			CompanyThreshold: getEnvAsFloat("MATCH_COMPANY_THRESHOLD", 0.6),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, ValidationError{
			Field:   "Server.Port",
			Message: fmt.Sprintf("must be between 1 and 65535, got %d", c.Server.Port),
		})
	}

	switch strings.ToLower(c.Logger.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		errs = append(errs, ValidationError{
			Field:   "Logger.Level",
			Message: fmt.Sprintf("unknown log level %q", c.Logger.Level),
		})
	}

	if c.Search.MaxResults < 1 {
		errs = append(errs, ValidationError{
			Field:   "Search.MaxResults",
			Message: fmt.Sprintf("must be >= 1, got %d", c.Search.MaxResults),
		})
	}

	for _, w := range []struct {
		field string
		value float64
	}{
		{"Matching.EmailWeight", c.Matching.EmailWeight},
		{"Matching.NameWeight", c.Matching.NameWeight},
		{"Matching.CompanyWeight", c.Matching.CompanyWeight},
		{"Matching.LocationWeight", c.Matching.LocationWeight},
		{"Matching.JobTitleWeight", c.Matching.JobTitleWeight},
	} {
		if w.value < 0 {
			errs = append(errs, ValidationError{
				Field:   w.field,
				Message: fmt.Sprintf("must be >= 0, got %v", w.value),
			})
		}
	}

	for _, th := range []struct {
		field string
		value float64
	}{
		{"Matching.NameThreshold", c.Matching.NameThreshold},
		{"Matching.CompanyThreshold", c.Matching.CompanyThreshold},
	} {
		if th.value < 0 || th.value > 1 {
			errs = append(errs, ValidationError{
				Field:   th.field,
				Message: fmt.Sprintf("must be within [0,1], got %v", th.value),
			})
		}
	}

	switch c.Matching.Algorithm {
	case "jaro-winkler", "edit-ratio":
	default:
		errs = append(errs, ValidationError{
			Field:   "Matching.Algorithm",
			Message: fmt.Sprintf("unknown algorithm %q", c.Matching.Algorithm),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
