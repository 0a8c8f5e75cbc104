// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/garyellow/winston-hrbot-go/internal/bamboo"
	"github.com/garyellow/winston-hrbot-go/internal/bot"
	"github.com/garyellow/winston-hrbot-go/internal/buildinfo"
	"github.com/garyellow/winston-hrbot-go/internal/calendar"
	"github.com/garyellow/winston-hrbot-go/internal/config"
	"github.com/garyellow/winston-hrbot-go/internal/content"
	"github.com/garyellow/winston-hrbot-go/internal/directory"
	"github.com/garyellow/winston-hrbot-go/internal/logger"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
	"github.com/garyellow/winston-hrbot-go/internal/modules/balance"
	"github.com/garyellow/winston-hrbot-go/internal/modules/headcount"
	"github.com/garyellow/winston-hrbot-go/internal/modules/joke"
	"github.com/garyellow/winston-hrbot-go/internal/modules/menu"
	"github.com/garyellow/winston-hrbot-go/internal/modules/plate"
	"github.com/garyellow/winston-hrbot-go/internal/modules/timeoffrequest"
	"github.com/garyellow/winston-hrbot-go/internal/modules/wellness"
	"github.com/garyellow/winston-hrbot-go/internal/numbers"
	"github.com/garyellow/winston-hrbot-go/internal/parking"
	"github.com/garyellow/winston-hrbot-go/internal/sentry"
	"github.com/garyellow/winston-hrbot-go/internal/slackapi"
)

// ServiceName tags every log line and error event.
const ServiceName = "winston-hrbot-go"

// Application manages the application lifecycle and dependencies.
type Application struct {
	cfg        *config.Config
	logger     *logger.Logger
	metrics    *metrics.Metrics
	registry   *prometheus.Registry
	intents    *bot.Registry
	dispatcher *bot.Dispatcher
	contentSrc string // "embedded" or "bucket"
	server     *http.Server
}

// Initialize creates and initializes a new application with all dependencies.
func Initialize(ctx context.Context, cfg *config.Config) (*Application, error) {
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken: cfg.BetterStackToken,
	})

	log = log.WithField("service", ServiceName)
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}

	// Set as default logger so package-level slog.*Context() calls also get
	// request_id, user_id and intent from the context.
	slog.SetDefault(log.Logger)

	log.WithField("version", buildinfo.Version).
		WithField("commit", buildinfo.Commit).
		WithField("build_date", buildinfo.BuildDate).
		Info("Initializing application...")
	if cfg.BetterStackToken != "" {
		log.Info("Better Stack logging enabled")
	}

	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Version,
	}); err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	if sentry.IsEnabled() {
		log.WithField("host", cfg.SentryHost).Info("Error tracking enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	catalog, source, err := loadContent(ctx, cfg, log, m)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}

	intents := buildRegistry(ctx, cfg, catalog, log, m)
	log.WithField("intents", intents.Intents()).Info("Intent handlers registered")

	app := &Application{
		cfg:      cfg,
		logger:   log,
		metrics:  m,
		registry: registry,
		intents:  intents,
		dispatcher: bot.NewDispatcher(bot.DispatcherConfig{
			Registry: intents,
			BotName:  cfg.BotName,
			Logger:   log,
			Metrics:  m,
		}),
		contentSrc: source,
	}

	gin.SetMode(gin.ReleaseMode)
	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.newRouter(),
		ReadHeaderTimeout: config.ServerRead,
		ReadTimeout:       config.ServerRead,
		WriteTimeout:      config.ServerWrite,
		IdleTimeout:       config.ServerIdle,
	}

	log.Info("Initialization complete")
	return app, nil
}

// loadContent returns the embedded catalog, replaced by the bucket's
// objects when a bucket is configured.
func loadContent(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (*content.Catalog, string, error) {
	base, err := content.Default()
	if err != nil {
		return nil, "", err
	}
	if !cfg.HasContentBucket() {
		return base, "embedded", nil
	}

	loadCtx, cancel := context.WithTimeout(ctx, config.ContentLoad)
	defer cancel()

	store, err := content.NewS3Store(loadCtx, content.StoreConfig{
		Bucket:   cfg.ContentBucket,
		Prefix:   cfg.ContentPrefix,
		Region:   cfg.ContentRegion,
		Endpoint: cfg.ContentEndpoint,
	})
	if err != nil {
		return nil, "", err
	}
	catalog, err := content.Load(loadCtx, store, base, log.WithModule("content"), m)
	if err != nil {
		return nil, "", err
	}
	log.WithField("bucket", cfg.ContentBucket).Info("Static content loaded from bucket")
	return catalog, "bucket", nil
}

// buildRegistry creates the collaborator clients and registers one handler
// per supported intent.
func buildRegistry(ctx context.Context, cfg *config.Config, catalog *content.Catalog, log *logger.Logger, m *metrics.Metrics) *bot.Registry {
	hr := bamboo.New(bamboo.Config{
		BaseURL: cfg.BambooBaseURL,
		APIKey:  cfg.BambooAPIKey,
		Timeout: config.BambooRequest,
		Metrics: m,
	})
	slackClient := slackapi.New(slackapi.Config{
		Token:   cfg.SlackAPIToken,
		APIURL:  cfg.SlackAPIURL,
		Timeout: config.SlackRequest,
		Metrics: m,
	})
	parkingClient := parking.New(parking.Config{
		BaseURL:  cfg.ParkingBaseURL,
		MagicKey: cfg.ParkingMagicKey,
		Timeout:  config.ParkingRequest,
		Metrics:  m,
	})
	numbersClient := numbers.New(numbers.Config{
		BaseURL: cfg.NumbersBaseURL,
		Timeout: config.NumbersRequest,
		Metrics: m,
	})

	var events wellness.EventLister
	calendarClient, err := calendar.New(ctx, calendar.Config{
		CalendarID:      cfg.CalendarID,
		CredentialsFile: cfg.GoogleCredentialsFile,
		Timeout:         config.CalendarRequest,
		Metrics:         m,
	})
	if err != nil {
		// Other intents keep working without the calendar.
		log.WithError(err).Warn("Calendar unavailable, wellness answers will report the error")
		events = unavailableCalendar{err: err}
	} else {
		events = calendarClient
	}

	resolver := directory.NewResolver(slackClient, hr)
	loc := cfg.Location()

	registry := bot.NewRegistry()
	registry.Register(balance.NewHandler(resolver, hr, log, nil))
	registry.Register(timeoffrequest.NewHandler(timeoffrequest.Config{
		Resolver: resolver,
		TimeOff:  hr,
		Logger:   log,
		Location: loc,
	}))
	registry.Register(joke.NewHandler(catalog, nil))
	registry.Register(plate.NewHandler(slackClient, parkingClient, log))
	registry.Register(headcount.NewHandler(hr, numbersClient, log))
	registry.Register(menu.NewHandler(catalog))
	registry.Register(wellness.NewHandler(wellness.Config{
		Activities: catalog,
		Events:     events,
		EventsURL:  cfg.WellnessEventsURL,
		Logger:     log,
	}))
	return registry
}

// unavailableCalendar stands in for a calendar client that failed to start.
type unavailableCalendar struct {
	err error
}

func (u unavailableCalendar) UpcomingEvents(context.Context, time.Time, int64) ([]calendar.Event, error) {
	return nil, u.err
}

func (a *Application) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(a.logger))

	router.GET("/livez", a.livenessCheck)
	router.HEAD("/livez", a.livenessCheck)
	router.GET("/readyz", a.readinessCheck)
	router.HEAD("/readyz", a.readinessCheck)
	router.POST("/lex", webhookAuthMiddleware(a.cfg.WebhookToken, a.metrics), a.handleLex)
	router.GET("/metrics",
		metricsAuthMiddleware(a.cfg.MetricsPassword != "", a.cfg.MetricsUsername, a.cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))
	return router
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

func (a *Application) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"intents": a.intents.Intents(),
		"content": a.contentSrc,
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
	})
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down gracefully.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.WithField("port", a.cfg.Port).Info("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		a.logger.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-errCh:
		a.logger.WithError(err).Error("HTTP server error")
		_ = a.shutdown()
		return fmt.Errorf("http server: %w", err)
	}

	return a.shutdown()
}

func (a *Application) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	a.logger.Info("Stopping HTTP server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("HTTP server shutdown error")
	}

	if sentry.IsEnabled() && !sentry.Flush(5*time.Second) {
		a.logger.Warn("Some error events were not delivered before shutdown")
	}

	a.logger.Info("Shutdown complete")
	return nil
}
