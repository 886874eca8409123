package audiogate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/tracing"
)

// Client talks to the audio service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type startRequest struct {
	Adhan  bool    `json:"adhan"`
	Volume float64 `json:"volume"`
}

type stopRequest struct {
	FadeOutSeconds int `json:"fade_out_seconds"`
}

type hapticRequest struct {
	Intensity float64 `json:"intensity"`
}

func (c *Client) StartReminderSound(ctx context.Context, profile SoundProfile) error {
	return c.post(ctx, "/api/v1/audio/start", startRequest{
		Adhan:  profile.Adhan,
		Volume: profile.Volume,
	})
}

func (c *Client) StopReminderSound(ctx context.Context, fadeOutSeconds int) error {
	return c.post(ctx, "/api/v1/audio/stop", stopRequest{
		FadeOutSeconds: fadeOutSeconds,
	})
}

func (c *Client) PulseHaptic(ctx context.Context, intensity float64) error {
	return c.post(ctx, "/api/v1/audio/haptic", hapticRequest{
		Intensity: intensity,
	})
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = path

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to audio service",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		slog.ErrorContext(ctx, "unexpected status code from audio service",
			slog.String("path", path),
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
