//go:build !gcloud

package notifygate

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// MisbahTasksClient schedules reminder deliveries through the Misbah Tasks
// HTTP queue. Each schedule request is a single attempt: a failed request
// means that one reminder is dropped for the day rather than the whole
// scheduling pass blocking on retries.
type MisbahTasksClient struct {
	baseURL       string
	queueName     string
	cancelTimeout time.Duration
	httpClient    *http.Client
}

func NewMisbahTasksClient(baseURL, queueName string, cancelTimeout time.Duration) *MisbahTasksClient {
	if cancelTimeout <= 0 {
		cancelTimeout = 10 * time.Second
	}

	return &MisbahTasksClient{
		baseURL:       baseURL,
		queueName:     queueName,
		cancelTimeout: cancelTimeout,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *MisbahTasksClient) Schedule(ctx context.Context, schedReq *ScheduleRequest) (*ScheduleResponse, error) {
	body, err := json.Marshal(deliveryBody{
		Payload: schedReq.Payload,
		Actions: schedReq.Actions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal delivery body: %w", err)
	}

	encodedBody := base64.StdEncoding.EncodeToString(body)

	misbahReq := misbahTaskRequest{
		Task: misbahTask{
			HTTPRequest: misbahHTTPRequest{
				Body: encodedBody,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
			},
		},
	}

	if !schedReq.FireAt.IsZero() {
		misbahReq.Task.ScheduleTime = schedReq.FireAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(misbahReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal misbah request: %w", err)
	}

	url := fmt.Sprintf("%s/tasks", c.baseURL)
	if c.queueName != "" && c.queueName != "default" {
		url = fmt.Sprintf("%s/tasks/%s", c.baseURL, c.queueName)
	}

	slog.DebugContext(ctx, "scheduling notification with Misbah Tasks",
		slog.String("url", url),
		slog.String("prayer", schedReq.Payload.Prayer.String()),
		slog.String("date", schedReq.Payload.Date),
		slog.Time("fire_at", schedReq.FireAt),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "failed to send request to Misbah Tasks",
			slog.String("prayer", schedReq.Payload.Prayer.String()),
			slog.String("date", schedReq.Payload.Date),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.WarnContext(ctx, "unexpected status code from Misbah Tasks",
			slog.String("prayer", schedReq.Payload.Prayer.String()),
			slog.String("date", schedReq.Payload.Date),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var misbahResp misbahTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&misbahResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, misbahResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, misbahResp.CreateTime)

	slog.InfoContext(ctx, "notification scheduled with Misbah Tasks",
		slog.String("task_name", misbahResp.Name),
		slog.String("prayer", schedReq.Payload.Prayer.String()),
		slog.String("date", schedReq.Payload.Date),
	)

	return &ScheduleResponse{
		ID:           misbahResp.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

// Cancel is bounded by the configured cancel timeout so a slow queue cannot
// stall a whole cancellation sweep.
func (c *MisbahTasksClient) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.cancelTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/tasks/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send cancel request: %w", err)
	}
	defer resp.Body.Close()

	// A task that already fired or was already cancelled is gone; treat
	// not-found as success so repeated cancels stay idempotent.
	if resp.StatusCode == http.StatusNotFound {
		slog.DebugContext(ctx, "notification already gone on cancel",
			slog.String("task_id", id),
		)
		return nil
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.DebugContext(ctx, "notification cancelled",
		slog.String("task_id", id),
	)

	return nil
}
