package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/audiogate"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/eventrecorder"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/notifygate"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/prayerdata"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/metrics"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/snooze"
)

type routerEnv struct {
	router  *Router
	source  *prayerdata.MockSource
	audio   *audiogate.MockAudioGateway
	gateway *notifygate.MockDeliveryGateway
	tracker *domain.MockSnoozeTracker
	store   *domain.MockScheduleStore
}

func newRouterEnv(t *testing.T) *routerEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := prayerdata.NewMockSource(ctrl)
	audio := audiogate.NewMockAudioGateway(ctrl)
	gateway := notifygate.NewMockDeliveryGateway(ctrl)
	tracker := domain.NewMockSnoozeTracker(ctrl)
	store := domain.NewMockScheduleStore(ctrl)

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	recorder := eventrecorder.NewNoopRecorder()
	snoozer := snooze.NewCoordinator(gateway, tracker, recorder, reminderMetrics, time.UTC)
	router := NewRouter(snoozer, audio, source, store, recorder)

	return &routerEnv{
		router:  router,
		source:  source,
		audio:   audio,
		gateway: gateway,
		tracker: tracker,
		store:   store,
	}
}

func testSettings() *domain.PrayerSettings {
	return &domain.PrayerSettings{
		Notifications:   map[domain.PrayerName]bool{domain.PrayerMaghrib: true},
		EnableAdhan:     true,
		EnableVibration: true,
		MaxSnoozes:      2,
		SnoozeDuration:  5,
		Volume:          0.7,
	}
}

func TestHandleSnoozeAction(t *testing.T) {
	env := newRouterEnv(t)

	env.source.EXPECT().GetSettings(gomock.Any()).Return(testSettings(), nil)
	env.tracker.EXPECT().Get(gomock.Any(), "2024-06-01", domain.PrayerMaghrib).
		Return(nil, domain.ErrSnoozeNotFound)
	env.tracker.EXPECT().Save(gomock.Any(), "2024-06-01", gomock.Any()).Return(nil)
	env.gateway.EXPECT().Schedule(gomock.Any(), gomock.Any()).
		Return(&notifygate.ScheduleResponse{ID: "follow-up"}, nil)

	err := env.router.Handle(context.Background(), domain.SnoozeAction{
		Prayer:       domain.PrayerMaghrib,
		OriginalTime: "18:30",
		Date:         "2024-06-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleStopActionClearsChain(t *testing.T) {
	env := newRouterEnv(t)

	env.audio.EXPECT().StopReminderSound(gomock.Any(), stopFadeOutSeconds).Return(nil)
	env.tracker.EXPECT().Delete(gomock.Any(), "2024-06-01", domain.PrayerMaghrib).Return(nil)

	err := env.router.Handle(context.Background(), domain.StopAction{
		Prayer: domain.PrayerMaghrib,
		Date:   "2024-06-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleStopActionAudioFailureStillClears(t *testing.T) {
	env := newRouterEnv(t)

	env.audio.EXPECT().StopReminderSound(gomock.Any(), stopFadeOutSeconds).
		Return(errors.New("audio service unavailable"))
	env.tracker.EXPECT().Delete(gomock.Any(), "2024-06-01", domain.PrayerMaghrib).Return(nil)

	err := env.router.Handle(context.Background(), domain.StopAction{
		Prayer: domain.PrayerMaghrib,
		Date:   "2024-06-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleFireAction(t *testing.T) {
	env := newRouterEnv(t)

	env.source.EXPECT().GetSettings(gomock.Any()).Return(testSettings(), nil)
	env.audio.EXPECT().StartReminderSound(gomock.Any(), audiogate.SoundProfile{Adhan: true, Volume: 0.7}).Return(nil)
	env.audio.EXPECT().PulseHaptic(gomock.Any(), hapticIntensity).Return(nil)
	env.store.EXPECT().MarkNotified(gomock.Any(), "2024-06-01", domain.PrayerMaghrib).Return(nil)

	err := env.router.Handle(context.Background(), domain.FireAction{
		Prayer: domain.PrayerMaghrib,
		Date:   "2024-06-01",
		Kind:   domain.KindPrayerTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleFireActionRespectsDisabledAudio(t *testing.T) {
	env := newRouterEnv(t)

	settings := testSettings()
	settings.EnableAdhan = false
	settings.EnableVibration = false

	env.source.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
	env.store.EXPECT().MarkNotified(gomock.Any(), "2024-06-01", domain.PrayerMaghrib).Return(nil)

	err := env.router.Handle(context.Background(), domain.FireAction{
		Prayer: domain.PrayerMaghrib,
		Date:   "2024-06-01",
		Kind:   domain.KindPrayerSnooze,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
