//go:build gcloud

package notifygate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CloudTasksClient schedules reminder deliveries through Google Cloud Tasks.
// The task name doubles as the cancellation id.
type CloudTasksClient struct {
	client        *cloudtasks.Client
	projectID     string
	locationID    string
	queueID       string
	targetURL     string
	cancelTimeout time.Duration
}

type CloudTasksConfig struct {
	ProjectID     string
	LocationID    string
	QueueID       string
	TargetURL     string
	CancelTimeout time.Duration
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	cancelTimeout := cfg.CancelTimeout
	if cancelTimeout <= 0 {
		cancelTimeout = 10 * time.Second
	}

	return &CloudTasksClient{
		client:        client,
		projectID:     cfg.ProjectID,
		locationID:    cfg.LocationID,
		queueID:       cfg.QueueID,
		targetURL:     cfg.TargetURL,
		cancelTimeout: cancelTimeout,
	}, nil
}

func (c *CloudTasksClient) Schedule(ctx context.Context, schedReq *ScheduleRequest) (*ScheduleResponse, error) {
	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		c.projectID, c.locationID, c.queueID)

	body, err := json.Marshal(deliveryBody{
		Payload: schedReq.Payload,
		Actions: schedReq.Actions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal delivery body: %w", err)
	}

	taskName := fmt.Sprintf("%s/tasks/%s", queuePath, uuid.NewString())

	cloudTask := &taskspb.Task{
		Name: taskName,
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: body,
			},
		},
	}

	if !schedReq.FireAt.IsZero() {
		cloudTask.ScheduleTime = timestamppb.New(schedReq.FireAt)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: queuePath,
		Task:   cloudTask,
	}

	createdTask, err := c.client.CreateTask(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("prayer", schedReq.Payload.Prayer.String()),
			slog.String("date", schedReq.Payload.Date),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.InfoContext(ctx, "notification scheduled with Cloud Tasks",
		slog.String("task_name", createdTask.GetName()),
		slog.String("prayer", schedReq.Payload.Prayer.String()),
		slog.String("date", schedReq.Payload.Date),
	)

	var scheduleTime, createTime time.Time
	if createdTask.GetScheduleTime() != nil {
		scheduleTime = createdTask.GetScheduleTime().AsTime()
	}
	if createdTask.GetCreateTime() != nil {
		createTime = createdTask.GetCreateTime().AsTime()
	}

	return &ScheduleResponse{
		ID:           createdTask.GetName(),
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

// Cancel is bounded by the configured cancel timeout so a slow queue cannot
// stall a whole cancellation sweep.
func (c *CloudTasksClient) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.cancelTimeout)
	defer cancel()

	err := c.client.DeleteTask(ctx, &taskspb.DeleteTaskRequest{Name: id})
	if err != nil {
		// Fired and already-deleted tasks are gone; repeated cancels stay
		// idempotent.
		if status.Code(err) == codes.NotFound {
			slog.DebugContext(ctx, "cloud task already gone on cancel",
				slog.String("task_id", id),
			)
			return nil
		}
		return fmt.Errorf("failed to delete cloud task: %w", err)
	}

	slog.DebugContext(ctx, "cloud task cancelled",
		slog.String("task_id", id),
	)

	return nil
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}
