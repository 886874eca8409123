//go:build !gcloud

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/misbahapp/prayer-notification-scheduling/internal/config"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/notifygate"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/logging"
)

func initGateway(_ context.Context, cfg *config.Config) (notifygate.DeliveryGateway, func() error, error) {
	if cfg.Gateway.MisbahTasksURL == "" {
		return nil, nil, errors.New("MISBAH_TASKS_URL is required")
	}

	gateway := notifygate.NewMisbahTasksClient(
		cfg.Gateway.MisbahTasksURL,
		cfg.Gateway.QueueName,
		time.Duration(cfg.Gateway.CancelTimeout)*time.Second,
	)

	slog.Info("delivery gateway initialized",
		slog.String("type", "misbah_tasks"),
		slog.String("url", cfg.Gateway.MisbahTasksURL),
		slog.String("queue", cfg.Gateway.QueueName),
	)

	return gateway, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "prayer-scheduling"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("prayer-notification-scheduling"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
