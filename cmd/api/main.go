package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"zenned/config"
	_ "zenned/docs" // Swagger docs
	"zenned/internal/httpserver"
	"zenned/internal/metrics"
	"zenned/migrations"
	"zenned/pkg/datemath"
	"zenned/pkg/encrypter"
	"zenned/pkg/gcalendar"
	"zenned/pkg/llmprovider"
	"zenned/pkg/log"
	"zenned/pkg/postgres"
	"zenned/pkg/scope"
)

// @title       Zenned API
// @description Calendar with AI weekly-plan import.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Zenned...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(cfg.Database.DSN, migrations.FS); err != nil {
			logger.Errorf(ctx, "Failed to run migrations: %v", err)
			os.Exit(1)
		}
		logger.Info(ctx, "Migrations applied")
	}

	// 4. Metrics
	scheduleMetrics := metrics.NewScheduleMetrics(prometheus.DefaultRegisterer)

	// 5. LLM providers. None configured is allowed; imports report it per request.
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No AI provider configured: set NVIDIA_API_KEY or OPENAI_API_KEY to enable schedule import")
	case err != nil:
		logger.Warnf(ctx, "AI providers unavailable: %v", err)
	default:
		for _, p := range providers {
			logger.Infof(ctx, "AI provider ready: %s (%s)", p.Name(), p.Model())
		}
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger).WithObserver(scheduleMetrics)

	// 6. Clock
	clock, err := datemath.NewClock(cfg.Schedule.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Schedule.Timezone, err)
		clock, _ = datemath.NewClock("UTC")
	}

	// 7. Google Calendar mirror (optional)
	var calendarClient gcalendar.IGCalendar
	if cfg.GoogleCalendar.Enabled() {
		calendarClient, err = gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
			Timezone:        cfg.GoogleCalendar.Timezone,
		})
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:               logger,
		Port:                 cfg.HTTPServer.Port,
		Mode:                 cfg.HTTPServer.Mode,
		Environment:          cfg.Environment.Name,
		ShutdownTimeout:      cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:           db,
		JWTManager:           scope.New(cfg.JWT.SecretKey, cfg.JWT.TTL),
		Encrypter:            encrypter.New(encrypter.DefaultCost),
		Cookie:               cfg.Cookie,
		TokenTTL:             cfg.JWT.TTL,
		LoginRateLimitPerMin: cfg.HTTPServer.LoginRateLimitPerMin,
		Clock:                clock,
		Calendar:             calendarClient,
		Completer:            manager,
		Schedule:             cfg.Schedule,
		Metrics:              scheduleMetrics,
		Gatherer:             prometheus.DefaultGatherer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
