package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
	"github.com/misbahapp/prayer-notification-scheduling/internal/testutil"
)

func TestScheduleStoreSaveAndGetDay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewScheduleStore(client)

	notifications := []domain.ScheduledNotification{
		domain.NewScheduledNotification("task-1", domain.PrayerFajr, "04:30", "2024-06-01"),
		domain.NewScheduledNotification("task-2", domain.PrayerDhuhr, "12:15", "2024-06-01"),
	}

	if err := store.SaveDay(ctx, "2024-06-01", notifications); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetDay(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(got))
	}
	if got[0].ID != "task-1" || got[0].Prayer != domain.PrayerFajr {
		t.Errorf("first notification = %+v", got[0])
	}
	if !got[1].IsScheduled {
		t.Error("is_scheduled flag should survive round trip")
	}
}

func TestScheduleStoreGetDayNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewScheduleStore(client)

	_, err := store.GetDay(ctx, "2099-01-01")
	if !errors.Is(err, domain.ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestScheduleStoreDeleteDay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewScheduleStore(client)

	notifications := []domain.ScheduledNotification{
		domain.NewScheduledNotification("task-1", domain.PrayerAsr, "15:45", "2024-06-01"),
	}
	if err := store.SaveDay(ctx, "2024-06-01", notifications); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.DeleteDay(ctx, "2024-06-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.GetDay(ctx, "2024-06-01"); !errors.Is(err, domain.ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound after delete, got %v", err)
	}

	// Deleting an absent day is a no-op, not an error.
	if err := store.DeleteDay(ctx, "2024-06-01"); err != nil {
		t.Fatalf("unexpected error on repeat delete: %v", err)
	}
}

func TestScheduleStoreListDates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewScheduleStore(client)

	for _, date := range []string{"2024-06-01", "2024-06-02"} {
		notifications := []domain.ScheduledNotification{
			domain.NewScheduledNotification("task-"+date, domain.PrayerFajr, "04:30", date),
		}
		if err := store.SaveDay(ctx, date, notifications); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	dates, err := store.ListDates(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("got %d dates, want 2: %v", len(dates), dates)
	}

	seen := map[string]bool{}
	for _, d := range dates {
		seen[d] = true
	}
	if !seen["2024-06-01"] || !seen["2024-06-02"] {
		t.Errorf("dates = %v", dates)
	}
}

func TestSnoozeTrackerRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	tracker := NewSnoozeTracker(client)

	info := &domain.SnoozeInfo{
		Prayer:         domain.PrayerMaghrib,
		OriginalTime:   "18:30",
		SnoozeCount:    1,
		NextSnoozeTime: "18:35",
		MaxSnoozes:     2,
		SnoozeDuration: 5,
	}

	if err := tracker.Save(ctx, "2024-06-01", info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := tracker.Get(ctx, "2024-06-01", domain.PrayerMaghrib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SnoozeCount != 1 || got.OriginalTime != "18:30" || got.MaxSnoozes != 2 {
		t.Errorf("snooze info = %+v", got)
	}

	if err := tracker.Delete(ctx, "2024-06-01", domain.PrayerMaghrib); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := tracker.Get(ctx, "2024-06-01", domain.PrayerMaghrib); !errors.Is(err, domain.ErrSnoozeNotFound) {
		t.Fatalf("expected ErrSnoozeNotFound after delete, got %v", err)
	}
}

func TestSnoozeTrackerGetNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	tracker := NewSnoozeTracker(client)

	_, err := tracker.Get(ctx, "2024-06-01", domain.PrayerIsha)
	if !errors.Is(err, domain.ErrSnoozeNotFound) {
		t.Fatalf("expected ErrSnoozeNotFound, got %v", err)
	}
}

func TestRecreationMarker(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	marker := NewRecreationMarker(client)

	// Unset marker reads as empty, not an error.
	date, err := marker.LastRecreatedDate(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date != "" {
		t.Errorf("unset marker = %q, want empty", date)
	}

	if err := marker.SetLastRecreatedDate(ctx, "2024-06-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	date, err = marker.LastRecreatedDate(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date != "2024-06-01" {
		t.Errorf("marker = %q, want 2024-06-01", date)
	}
}
