//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/misbahapp/prayer-notification-scheduling/internal/config"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/notifygate"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/logging"
)

func initGateway(ctx context.Context, cfg *config.Config) (notifygate.DeliveryGateway, func() error, error) {
	targetURL := cfg.Gateway.GCloudTargetURL
	if targetURL == "" {
		targetURL = cfg.Gateway.CallbackURL
	}

	cloudTasksClient, err := notifygate.NewCloudTasksClient(ctx, notifygate.CloudTasksConfig{
		ProjectID:     cfg.Gateway.GCloudProjectID,
		LocationID:    cfg.Gateway.GCloudLocationID,
		QueueID:       cfg.Gateway.GCloudQueueID,
		TargetURL:     targetURL,
		CancelTimeout: time.Duration(cfg.Gateway.CancelTimeout) * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("delivery gateway initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.Gateway.GCloudProjectID),
		slog.String("location", cfg.Gateway.GCloudLocationID),
		slog.String("queue", cfg.Gateway.GCloudQueueID),
	)

	cleanup := func() error {
		if err := cloudTasksClient.Close(); err != nil {
			slog.Warn("failed to close cloud tasks client", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return cloudTasksClient, cleanup, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "prayer-scheduling"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("prayer-notification-scheduling"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
