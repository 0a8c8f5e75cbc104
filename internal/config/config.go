// Package config provides application configuration management.
// It loads settings from environment variables (optionally seeded from a
// .env file) and provides defaults for every collaborator endpoint.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default values for optional settings.
const (
	DefaultBotName           = "Winston"
	DefaultTimezone          = "America/Costa_Rica"
	DefaultBambooSubdomain   = "gorillalogic"
	DefaultParkingBaseURL    = "https://9pfd6h0h3e.execute-api.us-east-1.amazonaws.com/dev"
	DefaultNumbersBaseURL    = "http://numbersapi.com"
	DefaultCalendarID        = "6i7h19gftsao0fl18nibeukts8@group.calendar.google.com"
	DefaultWellnessEventsURL = "https://band.gorillalogic.com/events/"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Bot identity and locale
	BotName  string // Requests addressed to any other bot are rejected
	Timezone string // IANA zone used for "today" in date validation

	// BambooHR
	BambooAPIKey    string
	BambooSubdomain string
	BambooBaseURL   string // Derived from subdomain when empty

	// Slack
	SlackAPIToken string
	SlackAPIURL   string // Optional override, mostly for testing

	// Parking bot
	ParkingBaseURL  string
	ParkingMagicKey string

	// Numbers trivia
	NumbersBaseURL string

	// Wellness calendar
	CalendarID            string
	GoogleCredentialsFile string // Empty = application default credentials
	WellnessEventsURL     string

	// Static content override
	ContentBucket   string // Empty = embedded content only
	ContentPrefix   string
	ContentRegion   string
	ContentEndpoint string // Optional S3-compatible endpoint

	// Inbound auth
	WebhookToken    string // Bearer token for POST /lex (empty = no auth)
	MetricsUsername string
	MetricsPassword string // Empty = /metrics without auth

	// Sentry
	SentryToken       string
	SentryHost        string
	SentryEnvironment string

	// Better Stack
	BetterStackToken string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	subdomain := getEnv(EnvBambooSubdomain, DefaultBambooSubdomain)

	cfg := &Config{
		Port:            getEnv(EnvPort, "10000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, ServerShutdown),

		BotName:  getEnv(EnvBotName, DefaultBotName),
		Timezone: getEnv(EnvTimezone, DefaultTimezone),

		BambooAPIKey:    getEnv(EnvBambooAPIKey, ""),
		BambooSubdomain: subdomain,
		BambooBaseURL:   getEnv(EnvBambooBaseURL, "https://api.bamboohr.com/api/gateway.php/"+subdomain),

		SlackAPIToken: getEnv(EnvSlackAPIToken, ""),
		SlackAPIURL:   getEnv(EnvSlackAPIURL, ""),

		ParkingBaseURL:  getEnv(EnvParkingBaseURL, DefaultParkingBaseURL),
		ParkingMagicKey: getEnv(EnvParkingMagicKey, ""),

		NumbersBaseURL: getEnv(EnvNumbersBaseURL, DefaultNumbersBaseURL),

		CalendarID:            getEnv(EnvCalendarID, DefaultCalendarID),
		GoogleCredentialsFile: getEnv(EnvGoogleCredentialsFile, ""),
		WellnessEventsURL:     getEnv(EnvWellnessEventsURL, DefaultWellnessEventsURL),

		ContentBucket:   getEnv(EnvContentBucket, ""),
		ContentPrefix:   getEnv(EnvContentPrefix, "content/"),
		ContentRegion:   getEnv(EnvContentRegion, "us-east-1"),
		ContentEndpoint: getEnv(EnvContentEndpoint, ""),

		WebhookToken:    getEnv(EnvWebhookToken, ""),
		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),

		SentryToken:       getEnv(EnvSentryToken, ""),
		SentryHost:        getEnv(EnvSentryHost, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),

		BetterStackToken: getEnv(EnvBetterStackToken, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvPort))
	}
	if c.BotName == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvBotName))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("%s is invalid: %w", EnvTimezone, err))
	}
	if c.BambooAPIKey == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvBambooAPIKey))
	}
	if c.SlackAPIToken == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvSlackAPIToken))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}
	if c.SentryToken != "" && c.SentryHost == "" {
		errs = append(errs, fmt.Errorf("%s is required when %s is set", EnvSentryHost, EnvSentryToken))
	}
	if c.CalendarID == "" {
		errs = append(errs, errors.New(EnvCalendarID+" cannot be empty"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Location returns the configured time zone, falling back to UTC-6
// (Costa Rica has no DST) if tzdata is unavailable.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone(c.Timezone, -6*60*60)
	}
	return loc
}

// HasContentBucket reports whether static content should be loaded from S3.
func (c *Config) HasContentBucket() bool {
	return c.ContentBucket != ""
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value.
// Accepts Go duration strings ("30s") or plain seconds ("30").
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
