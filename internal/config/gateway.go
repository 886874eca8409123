package config

import (
	"os"
	"strconv"
)

const (
	misbahTasksURLEnv  = "MISBAH_TASKS_URL"
	notifyQueueNameEnv = "NOTIFY_QUEUE_NAME"

	gcloudProjectIDEnv  = "GCLOUD_PROJECT_ID"
	gcloudLocationIDEnv = "GCLOUD_LOCATION_ID"
	gcloudQueueIDEnv    = "GCLOUD_QUEUE_ID"
	gcloudTargetURLEnv  = "GCLOUD_TARGET_URL"

	callbackURLEnv = "NOTIFY_CALLBACK_URL"

	defaultQueueName = "default"
)

// GatewayConfig selects and configures the notification delivery gateway:
// the Misbah Tasks queue locally, Cloud Tasks under the gcloud build tag.
type GatewayConfig struct {
	MisbahTasksURL string
	QueueName      string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	// CallbackURL is where the gateway posts fire/action deliveries back.
	CallbackURL string

	CancelTimeout int
}

func LoadGatewayConfig() GatewayConfig {
	queueName := os.Getenv(notifyQueueNameEnv)
	if queueName == "" {
		queueName = defaultQueueName
	}

	cancelTimeout := 10
	if v := os.Getenv("NOTIFY_CANCEL_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cancelTimeout = parsed
		}
	}

	return GatewayConfig{
		MisbahTasksURL: os.Getenv(misbahTasksURLEnv),
		QueueName:      queueName,

		GCloudProjectID:  os.Getenv(gcloudProjectIDEnv),
		GCloudLocationID: os.Getenv(gcloudLocationIDEnv),
		GCloudQueueID:    os.Getenv(gcloudQueueIDEnv),
		GCloudTargetURL:  os.Getenv(gcloudTargetURLEnv),

		CallbackURL: os.Getenv(callbackURLEnv),

		CancelTimeout: cancelTimeout,
	}
}
