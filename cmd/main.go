package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/misbahapp/prayer-notification-scheduling/internal/config"
	"github.com/misbahapp/prayer-notification-scheduling/internal/handler"
	"github.com/misbahapp/prayer-notification-scheduling/internal/health"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/audiogate"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/eventrecorder"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/prayerdata"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/repository"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/logging"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/metrics"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/middleware"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/action"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/recreation"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/scheduler"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/snooze"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// Reminder event recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := eventrecorder.LoadConfig()
	recorder, err := eventrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize reminder event recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close reminder event recorder", slog.String("error", err.Error()))
		}
	}()

	prayerSource := prayerdata.NewClient(cfg.PrayerDataURL)
	audioGateway := audiogate.NewClient(cfg.AudioGatewayURL)

	deliveryGateway, cleanup, err := initGateway(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize delivery gateway", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("delivery gateway cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	scheduleStore := repository.NewScheduleStore(redisClient)
	snoozeTracker := repository.NewSnoozeTracker(redisClient)
	recreationMarker := repository.NewRecreationMarker(redisClient)

	schedulerService := scheduler.NewService(deliveryGateway, scheduleStore, recorder, reminderMetrics, cfg.Location)
	snoozeCoordinator := snooze.NewCoordinator(deliveryGateway, snoozeTracker, recorder, reminderMetrics, cfg.Location)
	recreationCoordinator := recreation.NewCoordinator(prayerSource, schedulerService, scheduleStore, recreationMarker, reminderMetrics, cfg.Location)
	actionRouter := action.NewRouter(snoozeCoordinator, audioGateway, prayerSource, scheduleStore, recorder)

	callbackHandler := handler.NewCallbackHandler(actionRouter)
	recreateHandler := handler.NewRecreateHandler(recreationCoordinator)
	scheduleHandler := handler.NewScheduleHandler(scheduleStore)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("prayer-notification-scheduling"),
		TracerName:  "github.com/misbahapp/prayer-notification-scheduling/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/notifications/callback", callbackHandler.HandleCallback)
		v1.POST("/notifications/recreate", recreateHandler.HandleRecreate)
		v1.GET("/schedules/:date", scheduleHandler.HandleGetDay)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Location.String()),
			slog.String("log_level", cfg.LogLevel.String()),
			slog.String("prayer_data_url", cfg.PrayerDataURL),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
