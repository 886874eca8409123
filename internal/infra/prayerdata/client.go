package prayerdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/tracing"
)

// Client fetches prayer times and settings from the prayer-data service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: newHTTPClient(baseURL),
	}
}

func (c *Client) GetDayPrayerTimes(ctx context.Context, date string) (*domain.DayPrayerTimes, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/api/v1/prayer-times/%s", date)

	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var resp dayTimesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode prayer times response: %w", err)
	}

	dayTimes := &domain.DayPrayerTimes{
		Date:    resp.Date,
		Prayers: make([]domain.PrayerTime, 0, len(resp.Prayers)),
	}
	for _, p := range resp.Prayers {
		name, err := domain.ParsePrayerName(p.Name)
		if err != nil {
			slog.WarnContext(ctx, "skipping unknown prayer in response",
				slog.String("name", p.Name),
				slog.String("date", resp.Date),
			)
			continue
		}
		dayTimes.Prayers = append(dayTimes.Prayers, domain.PrayerTime{
			Name:       name,
			Time:       p.Time,
			Adjustment: p.Adjustment,
		})
	}

	slog.DebugContext(ctx, "fetched day prayer times",
		slog.String("date", dayTimes.Date),
		slog.Int("count", len(dayTimes.Prayers)),
	)

	return dayTimes, nil
}

func (c *Client) GetSettings(ctx context.Context) (*domain.PrayerSettings, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/api/v1/settings/prayer"

	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var resp settingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode settings response: %w", err)
	}

	settings := &domain.PrayerSettings{
		Notifications:   make(map[domain.PrayerName]bool, len(resp.Notifications)),
		EnableAdhan:     resp.EnableAdhan,
		EnableVibration: resp.EnableVibration,
		MaxSnoozes:      resp.MaxSnoozes,
		SnoozeDuration:  resp.SnoozeDuration,
		Volume:          resp.Volume,
	}
	for name, enabled := range resp.Notifications {
		prayer, err := domain.ParsePrayerName(name)
		if err != nil {
			continue
		}
		settings.Notifications[prayer] = enabled
	}

	return settings, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to prayer-data service",
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from prayer-data service",
			slog.String("url", rawURL),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
