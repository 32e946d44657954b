package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	Server   Server
	Identity Lookup
	Number   Lookup
	Guard    Guard
	History  History
	Redis    RedisConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    string
}

// Lookup configures one category's upstream.
type Lookup struct {
	URL   string
	Param string
	// RelayURL, when set, wraps the upstream URL for CORS-restricted deployments.
	RelayURL string
	Timeout  time.Duration
}

// Guard locates the protected lists.
type Guard struct {
	IdentityURL string
	NumberURL   string
	Timeout     time.Duration
}

// History configures the recent-query store.
type History struct {
	KeyPrefix string
}

// RedisConfig configures the optional Redis history backend.
// An empty URL keeps history in process memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Defaults applied when the matching variable is unset.
var (
	DefaultHTTPClientTimeout = 15 * time.Second
	DefaultGuardTimeout      = 10 * time.Second
)

// FromEnv builds a Config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	timeout := getEnvDuration("HTTP_CLIENT_TIMEOUT", DefaultHTTPClientTimeout)

	cfg := Config{
		Server: Server{
			Addr:        getEnv("LOOKUP_ADDR", ":8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Identity: Lookup{
			URL:      os.Getenv("IDENTITY_LOOKUP_URL"),
			Param:    getEnv("IDENTITY_LOOKUP_PARAM", "aadhar"),
			RelayURL: os.Getenv("IDENTITY_RELAY_URL"),
			Timeout:  timeout,
		},
		Number: Lookup{
			URL:      os.Getenv("NUMBER_LOOKUP_URL"),
			Param:    getEnv("NUMBER_LOOKUP_PARAM", "num"),
			RelayURL: os.Getenv("NUMBER_RELAY_URL"),
			Timeout:  timeout,
		},
		Guard: Guard{
			IdentityURL: os.Getenv("IDENTITY_GUARD_URL"),
			NumberURL:   os.Getenv("NUMBER_GUARD_URL"),
			Timeout:     getEnvDuration("GUARD_TIMEOUT", DefaultGuardTimeout),
		},
		History: History{
			KeyPrefix: getEnv("HISTORY_KEY_PREFIX", "idlookup:history:"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getEnvInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
// Guard URLs are optional: an unset list behaves like an unreachable one.
func (c Config) Validate() error {
	var errs []error
	if c.Identity.URL == "" {
		errs = append(errs, errors.New("IDENTITY_LOOKUP_URL is required"))
	}
	if c.Number.URL == "" {
		errs = append(errs, errors.New("NUMBER_LOOKUP_URL is required"))
	}
	if c.Identity.Param == "" || c.Number.Param == "" {
		errs = append(errs, errors.New("lookup query parameter names must not be empty"))
	}
	if c.Identity.Timeout <= 0 {
		errs = append(errs, errors.New("HTTP_CLIENT_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
