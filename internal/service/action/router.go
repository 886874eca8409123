package action

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/audiogate"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/prayerdata"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/snooze"
)

const (
	stopFadeOutSeconds = 3
	hapticIntensity    = 0.8
)

// Router dispatches a decoded notification action to the right side effects:
// snooze extends the chain, stop silences and clears it, a bare fire plays
// the configured sound and marks the reminder delivered.
type Router struct {
	snoozer       *snooze.Coordinator
	audio         audiogate.AudioGateway
	source        prayerdata.Source
	scheduleStore domain.ScheduleStore
	recorder      domain.ReminderEventRecorder
}

func NewRouter(
	snoozer *snooze.Coordinator,
	audio audiogate.AudioGateway,
	source prayerdata.Source,
	scheduleStore domain.ScheduleStore,
	recorder domain.ReminderEventRecorder,
) *Router {
	return &Router{
		snoozer:       snoozer,
		audio:         audio,
		source:        source,
		scheduleStore: scheduleStore,
		recorder:      recorder,
	}
}

// Handle runs the side effects for one action. The switch is exhaustive over
// the closed Action set; anything else is a programming error upstream.
func (r *Router) Handle(ctx context.Context, act domain.Action) error {
	switch a := act.(type) {
	case domain.SnoozeAction:
		return r.handleSnooze(ctx, a)
	case domain.StopAction:
		return r.handleStop(ctx, a)
	case domain.FireAction:
		return r.handleFire(ctx, a)
	default:
		return fmt.Errorf("%w: %T", domain.ErrUnknownAction, act)
	}
}

func (r *Router) handleSnooze(ctx context.Context, a domain.SnoozeAction) error {
	settings, err := r.source.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch settings for snooze: %w", err)
	}

	accepted, err := r.snoozer.Snooze(ctx, a.Prayer, a.OriginalTime, a.Date, settings)
	if err != nil {
		return err
	}
	if !accepted {
		slog.InfoContext(ctx, "snooze limit reached",
			slog.String("prayer", a.Prayer.String()),
			slog.String("date", a.Date),
		)
	}

	return nil
}

func (r *Router) handleStop(ctx context.Context, a domain.StopAction) error {
	// Audio is best effort: nothing may be playing when the stop arrives
	// late, and a dead audio service must not keep the chain alive.
	if err := r.audio.StopReminderSound(ctx, stopFadeOutSeconds); err != nil {
		slog.WarnContext(ctx, "failed to stop reminder sound",
			slog.String("prayer", a.Prayer.String()),
			slog.String("error", err.Error()),
		)
	}

	if err := r.snoozer.Clear(ctx, a.Prayer, a.Date); err != nil {
		return fmt.Errorf("failed to clear snooze chain: %w", err)
	}

	r.recordEvent(ctx, domain.ReminderEventRecord{
		Prayer: a.Prayer,
		Date:   a.Date,
		Event:  domain.EventStopped,
	})

	slog.InfoContext(ctx, "reminder stopped",
		slog.String("prayer", a.Prayer.String()),
		slog.String("date", a.Date),
	)

	return nil
}

func (r *Router) handleFire(ctx context.Context, a domain.FireAction) error {
	settings, err := r.source.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch settings for fire: %w", err)
	}

	if settings.EnableAdhan {
		if err := r.audio.StartReminderSound(ctx, audiogate.SoundProfile{
			Adhan:  true,
			Volume: settings.Volume,
		}); err != nil {
			slog.WarnContext(ctx, "failed to start reminder sound",
				slog.String("prayer", a.Prayer.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if settings.EnableVibration {
		if err := r.audio.PulseHaptic(ctx, hapticIntensity); err != nil {
			slog.WarnContext(ctx, "failed to pulse haptic",
				slog.String("prayer", a.Prayer.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := r.scheduleStore.MarkNotified(ctx, a.Date, a.Prayer); err != nil {
		return fmt.Errorf("failed to mark reminder delivered: %w", err)
	}

	r.recordEvent(ctx, domain.ReminderEventRecord{
		Prayer: a.Prayer,
		Date:   a.Date,
		Event:  domain.EventFired,
	})

	slog.InfoContext(ctx, "reminder fired",
		slog.String("prayer", a.Prayer.String()),
		slog.String("date", a.Date),
		slog.String("kind", string(a.Kind)),
	)

	return nil
}

func (r *Router) recordEvent(ctx context.Context, record domain.ReminderEventRecord) {
	if err := r.recorder.RecordEvents(ctx, []domain.ReminderEventRecord{record}); err != nil {
		slog.WarnContext(ctx, "failed to record reminder event", slog.String("error", err.Error()))
	}
}
