//go:build !gcloud

package notifygate

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
)

func TestMisbahTasksClientSchedule(t *testing.T) {
	fireAt := time.Date(2024, 6, 1, 19, 45, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/tasks" {
			t.Errorf("path = %s, want /tasks", r.URL.Path)
		}

		var req misbahTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		if req.Task.ScheduleTime != fireAt.Format(time.RFC3339) {
			t.Errorf("scheduleTime = %q, want %q", req.Task.ScheduleTime, fireAt.Format(time.RFC3339))
		}

		raw, err := base64.StdEncoding.DecodeString(req.Task.HTTPRequest.Body)
		if err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		var body deliveryBody
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("failed to unmarshal delivery body: %v", err)
		}
		if body.Payload.Prayer != domain.PrayerMaghrib {
			t.Errorf("payload prayer = %q, want maghrib", body.Payload.Prayer)
		}
		if len(body.Actions) != 2 {
			t.Errorf("actions = %d, want 2", len(body.Actions))
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(misbahTaskResponse{
			Name:         "tasks/abc-123",
			ScheduleTime: fireAt.Format(time.RFC3339),
			CreateTime:   time.Now().UTC().Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	client := NewMisbahTasksClient(srv.URL, "default", 10*time.Second)

	resp, err := client.Schedule(context.Background(), &ScheduleRequest{
		FireAt: fireAt,
		Payload: domain.NotificationPayload{
			Type:   domain.KindPrayerTime,
			Prayer: domain.PrayerMaghrib,
			Time:   "19:45",
			Date:   "2024-06-01",
		},
		Actions: ReminderActions(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.ID != "tasks/abc-123" {
		t.Errorf("ID = %q, want %q", resp.ID, "tasks/abc-123")
	}
	if !resp.ScheduleTime.Equal(fireAt) {
		t.Errorf("ScheduleTime = %v, want %v", resp.ScheduleTime, fireAt)
	}
}

func TestMisbahTasksClientScheduleNamedQueue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/prayers" {
			t.Errorf("path = %s, want /tasks/prayers", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(misbahTaskResponse{Name: "tasks/prayers/xyz"})
	}))
	defer srv.Close()

	client := NewMisbahTasksClient(srv.URL, "prayers", 10*time.Second)

	resp, err := client.Schedule(context.Background(), &ScheduleRequest{
		Payload: domain.NotificationPayload{
			Type:   domain.KindPrayerTime,
			Prayer: domain.PrayerFajr,
			Date:   "2024-06-01",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != "tasks/prayers/xyz" {
		t.Errorf("ID = %q, want %q", resp.ID, "tasks/prayers/xyz")
	}
}

func TestMisbahTasksClientScheduleError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewMisbahTasksClient(srv.URL, "default", 10*time.Second)

	_, err := client.Schedule(context.Background(), &ScheduleRequest{
		Payload: domain.NotificationPayload{
			Type:   domain.KindPrayerTime,
			Prayer: domain.PrayerFajr,
			Date:   "2024-06-01",
		},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestMisbahTasksClientCancelTimeout(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-blocked
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	defer close(blocked)

	client := NewMisbahTasksClient(srv.URL, "default", 50*time.Millisecond)

	start := time.Now()
	err := client.Cancel(context.Background(), "task-1")
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("cancel took %v, timeout not applied", elapsed)
	}
}

func TestMisbahTasksClientCancel(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{name: "ok", statusCode: http.StatusOK},
		{name: "no content", statusCode: http.StatusNoContent},
		{name: "not found is idempotent", statusCode: http.StatusNotFound},
		{name: "server error", statusCode: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("method = %s, want DELETE", r.Method)
				}
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			client := NewMisbahTasksClient(srv.URL, "default", 10*time.Second)

			err := client.Cancel(context.Background(), "task-1")
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
