// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "WINSTON_PORT"
	EnvLogLevel        = "WINSTON_LOG_LEVEL"
	EnvShutdownTimeout = "WINSTON_SHUTDOWN_TIMEOUT"

	// Bot
	EnvBotName  = "WINSTON_BOT_NAME"
	EnvTimezone = "WINSTON_TIMEZONE"

	// BambooHR (Required)
	EnvBambooAPIKey    = "WINSTON_BAMBOO_API_KEY"
	EnvBambooSubdomain = "WINSTON_BAMBOO_SUBDOMAIN"
	EnvBambooBaseURL   = "WINSTON_BAMBOO_BASE_URL"

	// Slack (Required)
	EnvSlackAPIToken = "WINSTON_SLACK_API_TOKEN"
	EnvSlackAPIURL   = "WINSTON_SLACK_API_URL"

	// Parking bot
	EnvParkingBaseURL  = "WINSTON_PARKING_BASE_URL"
	EnvParkingMagicKey = "WINSTON_PARKING_MAGIC_KEY"

	// Numbers trivia
	EnvNumbersBaseURL = "WINSTON_NUMBERS_BASE_URL"

	// Wellness calendar
	EnvCalendarID            = "WINSTON_CALENDAR_ID"
	EnvGoogleCredentialsFile = "WINSTON_GOOGLE_CREDENTIALS_FILE"
	EnvWellnessEventsURL     = "WINSTON_WELLNESS_EVENTS_URL"

	// Static content override (S3)
	EnvContentBucket   = "WINSTON_CONTENT_BUCKET"
	EnvContentPrefix   = "WINSTON_CONTENT_PREFIX"
	EnvContentRegion   = "WINSTON_CONTENT_REGION"
	EnvContentEndpoint = "WINSTON_CONTENT_ENDPOINT"

	// Inbound auth
	EnvWebhookToken    = "WINSTON_WEBHOOK_TOKEN"
	EnvMetricsUsername = "WINSTON_METRICS_USERNAME"
	EnvMetricsPassword = "WINSTON_METRICS_PASSWORD"

	// Sentry Feature
	EnvSentryToken       = "WINSTON_SENTRY_TOKEN"
	EnvSentryHost        = "WINSTON_SENTRY_HOST"
	EnvSentryEnvironment = "WINSTON_SENTRY_ENVIRONMENT"

	// Better Stack Feature
	EnvBetterStackToken = "WINSTON_BETTERSTACK_TOKEN"
)
