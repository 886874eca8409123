package audiogate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientStartReminderSound(t *testing.T) {
	var gotPath string
	var gotBody startRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	err := client.StartReminderSound(context.Background(), SoundProfile{Adhan: true, Volume: 0.7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v1/audio/start" {
		t.Errorf("path = %s", gotPath)
	}
	if !gotBody.Adhan || gotBody.Volume != 0.7 {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestClientStopReminderSound(t *testing.T) {
	var gotBody stopRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/audio/stop" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	if err := client.StopReminderSound(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody.FadeOutSeconds != 3 {
		t.Errorf("fade_out_seconds = %d, want 3", gotBody.FadeOutSeconds)
	}
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	if err := client.PulseHaptic(context.Background(), 0.5); err == nil {
		t.Fatal("expected error, got nil")
	}
}
