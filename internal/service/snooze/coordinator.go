package snooze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/notifygate"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/metrics"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/tracing"
)

// Coordinator runs the bounded snooze chain for one (date, prayer) pair:
// count the request against the user's limit, persist the new chain state and
// schedule the follow-up reminder.
type Coordinator struct {
	gateway  notifygate.DeliveryGateway
	tracker  domain.SnoozeTracker
	recorder domain.ReminderEventRecorder
	metrics  *metrics.ReminderMetrics
	loc      *time.Location
	now      func() time.Time
}

func NewCoordinator(
	gateway notifygate.DeliveryGateway,
	tracker domain.SnoozeTracker,
	recorder domain.ReminderEventRecorder,
	reminderMetrics *metrics.ReminderMetrics,
	loc *time.Location,
) *Coordinator {
	return &Coordinator{
		gateway:  gateway,
		tracker:  tracker,
		recorder: recorder,
		metrics:  reminderMetrics,
		loc:      loc,
		now:      time.Now,
	}
}

// Snooze accepts or rejects one snooze request. A rejected request (chain
// exhausted) mutates nothing and returns false. An accepted request persists
// the incremented count before scheduling the follow-up; a follow-up schedule
// failure is logged but does not roll the count back, so the user cannot
// stretch the chain past the limit by retrying.
func (c *Coordinator) Snooze(ctx context.Context, prayer domain.PrayerName, originalTime, date string, settings *domain.PrayerSettings) (bool, error) {
	ctx, span := tracing.StartSnoozeSpan(ctx, prayer.String(), date)
	defer span.End()

	count := 0
	existing, err := c.tracker.Get(ctx, date, prayer)
	if err != nil {
		if !errors.Is(err, domain.ErrSnoozeNotFound) {
			tracing.RecordSnoozeResult(span, false, 0, time.Time{}, err)
			return false, fmt.Errorf("failed to read snooze state: %w", err)
		}
	} else {
		count = existing.SnoozeCount
	}

	next := count + 1
	if next > settings.MaxSnoozes {
		slog.InfoContext(ctx, "snooze rejected, chain exhausted",
			slog.String("prayer", prayer.String()),
			slog.String("date", date),
			slog.Int("snooze_count", count),
			slog.Int("max_snoozes", settings.MaxSnoozes),
		)
		c.recordEvent(ctx, domain.ReminderEventRecord{
			Prayer:      prayer,
			Date:        date,
			Event:       domain.EventSnoozeRejected,
			SnoozeCount: count,
		})
		c.metrics.RecordSnooze(ctx, prayer.String(), false)
		tracing.RecordSnoozeResult(span, false, count, time.Time{}, nil)
		return false, nil
	}

	nextFireAt := c.now().Add(time.Duration(settings.SnoozeDuration) * time.Minute)

	info := &domain.SnoozeInfo{
		Prayer:         prayer,
		OriginalTime:   originalTime,
		SnoozeCount:    next,
		NextSnoozeTime: domain.ClockKey(nextFireAt, c.loc),
		MaxSnoozes:     settings.MaxSnoozes,
		SnoozeDuration: settings.SnoozeDuration,
	}

	if err := c.tracker.Save(ctx, date, info); err != nil {
		tracing.RecordSnoozeResult(span, false, count, time.Time{}, err)
		return false, fmt.Errorf("failed to persist snooze state: %w", err)
	}

	_, err = c.gateway.Schedule(ctx, &notifygate.ScheduleRequest{
		FireAt: nextFireAt,
		Payload: domain.NotificationPayload{
			Type:         domain.KindPrayerSnooze,
			Prayer:       prayer,
			Date:         date,
			OriginalTime: originalTime,
			SnoozeCount:  next,
		},
		Actions: notifygate.ReminderActions(),
	})
	if err != nil {
		// The count stays incremented: the snooze was accepted even though
		// the follow-up delivery could not be requested.
		slog.ErrorContext(ctx, "failed to schedule snooze follow-up",
			slog.String("prayer", prayer.String()),
			slog.String("date", date),
			slog.Int("snooze_count", next),
			slog.String("error", err.Error()),
		)
	}

	c.recordEvent(ctx, domain.ReminderEventRecord{
		Prayer:      prayer,
		Date:        date,
		Event:       domain.EventSnoozed,
		FireAt:      nextFireAt,
		SnoozeCount: next,
	})
	c.metrics.RecordSnooze(ctx, prayer.String(), true)
	tracing.RecordSnoozeResult(span, true, next, nextFireAt, nil)

	slog.InfoContext(ctx, "snooze accepted",
		slog.String("prayer", prayer.String()),
		slog.String("date", date),
		slog.Int("snooze_count", next),
		slog.Time("next_fire_at", nextFireAt),
	)

	return true, nil
}

// Clear drops the snooze chain state for the pair, ending the chain.
func (c *Coordinator) Clear(ctx context.Context, prayer domain.PrayerName, date string) error {
	return c.tracker.Delete(ctx, date, prayer)
}

func (c *Coordinator) recordEvent(ctx context.Context, record domain.ReminderEventRecord) {
	if err := c.recorder.RecordEvents(ctx, []domain.ReminderEventRecord{record}); err != nil {
		slog.WarnContext(ctx, "failed to record snooze event", slog.String("error", err.Error()))
	}
}
