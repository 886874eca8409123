package recreation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/eventrecorder"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/notifygate"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/prayerdata"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/metrics"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/scheduler"
)

type testEnv struct {
	coordinator *Coordinator
	source      *prayerdata.MockSource
	gateway     *notifygate.MockDeliveryGateway
	store       *domain.MockScheduleStore
	marker      *domain.MockRecreationMarker
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := prayerdata.NewMockSource(ctrl)
	gateway := notifygate.NewMockDeliveryGateway(ctrl)
	store := domain.NewMockScheduleStore(ctrl)
	marker := domain.NewMockRecreationMarker(ctrl)

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	schedulerService := scheduler.NewService(gateway, store, eventrecorder.NewNoopRecorder(), reminderMetrics, time.UTC)
	coordinator := NewCoordinator(source, schedulerService, store, marker, reminderMetrics, time.UTC)

	return &testEnv{
		coordinator: coordinator,
		source:      source,
		gateway:     gateway,
		store:       store,
		marker:      marker,
	}
}

func testDay() *domain.DayPrayerTimes {
	return &domain.DayPrayerTimes{
		Date: "2024-06-01",
		Prayers: []domain.PrayerTime{
			{Name: domain.PrayerMaghrib, Time: "18:30"},
			{Name: domain.PrayerIsha, Time: "20:00"},
		},
	}
}

func testSettings() *domain.PrayerSettings {
	return &domain.PrayerSettings{
		Notifications: map[domain.PrayerName]bool{
			domain.PrayerMaghrib: true,
			domain.PrayerIsha:    true,
		},
		MaxSnoozes:     2,
		SnoozeDuration: 5,
	}
}

func TestRecreateRunsFullCycle(t *testing.T) {
	env := newTestEnv(t)

	at := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	env.marker.EXPECT().LastRecreatedDate(gomock.Any()).Return("2024-05-31", nil)
	env.source.EXPECT().GetDayPrayerTimes(gomock.Any(), "2024-06-01").Return(testDay(), nil)
	env.source.EXPECT().GetSettings(gomock.Any()).Return(testSettings(), nil)

	// One stale day plus today in the store.
	env.store.EXPECT().ListDates(gomock.Any()).Return([]string{"2024-05-31", "2024-06-01"}, nil)

	// Stale day sweep.
	env.store.EXPECT().GetDay(gomock.Any(), "2024-05-31").Return([]domain.ScheduledNotification{
		domain.NewScheduledNotification("stale-1", domain.PrayerIsha, "20:00", "2024-05-31"),
	}, nil)
	env.gateway.EXPECT().Cancel(gomock.Any(), "stale-1").Return(nil)
	env.store.EXPECT().DeleteDay(gomock.Any(), "2024-05-31").Return(nil)

	// Today's cancel-then-schedule inside ScheduleDay.
	env.store.EXPECT().GetDay(gomock.Any(), "2024-06-01").Return(nil, domain.ErrScheduleNotFound)
	env.gateway.EXPECT().Schedule(gomock.Any(), gomock.Any()).
		Return(&notifygate.ScheduleResponse{ID: "task-1"}, nil).Times(2)
	env.store.EXPECT().SaveDay(gomock.Any(), "2024-06-01", gomock.Len(2)).Return(nil)

	env.marker.EXPECT().SetLastRecreatedDate(gomock.Any(), "2024-06-01").Return(nil)

	outcome, err := env.coordinator.RecreateIfNeededAt(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Ran {
		t.Fatal("cycle should have run")
	}
	if outcome.CancelledDates != 1 {
		t.Errorf("cancelled dates = %d, want 1", outcome.CancelledDates)
	}
	if len(outcome.Schedule.Scheduled) != 2 {
		t.Errorf("scheduled = %d, want 2", len(outcome.Schedule.Scheduled))
	}
}

func TestRecreateNoOpWhenMarkerCurrent(t *testing.T) {
	env := newTestEnv(t)

	at := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	env.marker.EXPECT().LastRecreatedDate(gomock.Any()).Return("2024-06-01", nil)

	outcome, err := env.coordinator.RecreateIfNeededAt(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Ran {
		t.Fatal("cycle should not run when the marker already holds today")
	}
}

func TestRecreateSkipsWhenMarkerAhead(t *testing.T) {
	env := newTestEnv(t)

	// A trigger dated before the marker must not cancel the live schedule or
	// move the marker backwards.
	at := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	env.marker.EXPECT().LastRecreatedDate(gomock.Any()).Return("2024-06-02", nil)

	outcome, err := env.coordinator.RecreateIfNeededAt(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Ran {
		t.Fatal("cycle must not run for a date behind the marker")
	}
}

func TestRecreateFailureLeavesMarker(t *testing.T) {
	env := newTestEnv(t)

	at := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	env.marker.EXPECT().LastRecreatedDate(gomock.Any()).Return("", nil)
	env.source.EXPECT().GetDayPrayerTimes(gomock.Any(), "2024-06-01").
		Return(nil, errors.New("prayer-data unavailable"))
	// SetLastRecreatedDate must not be called.

	if _, err := env.coordinator.RecreateIfNeededAt(context.Background(), at); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRecreateSingleFlight(t *testing.T) {
	env := newTestEnv(t)

	at := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	// Whichever goroutine wins the mutex does the full cycle; the rest see
	// the advanced marker. The marker mock replays that ordering.
	var markerMu sync.Mutex
	marker := ""
	env.marker.EXPECT().LastRecreatedDate(gomock.Any()).DoAndReturn(
		func(context.Context) (string, error) {
			markerMu.Lock()
			defer markerMu.Unlock()
			return marker, nil
		},
	).Times(3)
	env.marker.EXPECT().SetLastRecreatedDate(gomock.Any(), "2024-06-01").DoAndReturn(
		func(_ context.Context, date string) error {
			markerMu.Lock()
			defer markerMu.Unlock()
			marker = date
			return nil
		},
	)

	env.source.EXPECT().GetDayPrayerTimes(gomock.Any(), "2024-06-01").Return(testDay(), nil)
	env.source.EXPECT().GetSettings(gomock.Any()).Return(testSettings(), nil)
	env.store.EXPECT().ListDates(gomock.Any()).Return(nil, nil)
	env.store.EXPECT().GetDay(gomock.Any(), "2024-06-01").Return(nil, domain.ErrScheduleNotFound)
	env.gateway.EXPECT().Schedule(gomock.Any(), gomock.Any()).
		Return(&notifygate.ScheduleResponse{ID: "task-1"}, nil).Times(2)
	env.store.EXPECT().SaveDay(gomock.Any(), "2024-06-01", gomock.Any()).Return(nil)

	var wg sync.WaitGroup
	ranCount := 0
	var ranMu sync.Mutex
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := env.coordinator.RecreateIfNeededAt(context.Background(), at)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if outcome.Ran {
				ranMu.Lock()
				ranCount++
				ranMu.Unlock()
			}
		}()
	}
	wg.Wait()

	if ranCount != 1 {
		t.Errorf("ran count = %d, want exactly 1", ranCount)
	}
}
