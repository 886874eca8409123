package scheduler

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

// Service schedules a day's prayer reminders through the delivery gateway
// and keeps the persisted schedule in sync with what was actually requested.
type Service struct {
	gateway       notifygate.DeliveryGateway
	scheduleStore domain.ScheduleStore
	recorder      domain.ReminderEventRecorder
	metrics       *metrics.ReminderMetrics
	loc           *time.Location
	now           func() time.Time
}

func NewService(
	gateway notifygate.DeliveryGateway,
	scheduleStore domain.ScheduleStore,
	recorder domain.ReminderEventRecorder,
	reminderMetrics *metrics.ReminderMetrics,
	loc *time.Location,
) *Service {
	return &Service{
		gateway:       gateway,
		scheduleStore: scheduleStore,
		recorder:      recorder,
		metrics:       reminderMetrics,
		loc:           loc,
		now:           time.Now,
	}
}

// ScheduleDay cancels whatever is already scheduled for the day and schedules
// a reminder for every enabled prayer whose fire instant is still ahead of
// now. Individual gateway failures do not abort the run: the failed prayer is
// logged, recorded and omitted from the persisted schedule.
func (s *Service) ScheduleDay(ctx context.Context, day *domain.DayPrayerTimes, settings *domain.PrayerSettings) (*Result, error) {
	return s.ScheduleDayAt(ctx, day, settings, s.now())
}

// ScheduleDayAt is ScheduleDay with an explicit reference instant for the
// past-prayer check.
func (s *Service) ScheduleDayAt(ctx context.Context, day *domain.DayPrayerTimes, settings *domain.PrayerSettings, at time.Time) (*Result, error) {
	ctx, span := tracing.StartScheduleDaySpan(ctx, day.Date)
	defer span.End()

	start := time.Now()

	if _, err := s.CancelForDate(ctx, day.Date); err != nil {
		tracing.RecordScheduleDayResult(span, 0, 0, 0, err)
		return nil, fmt.Errorf("failed to cancel existing schedule for %s: %w", day.Date, err)
	}

	result := &Result{Date: day.Date}
	events := make([]domain.ReminderEventRecord, 0, len(day.Prayers))
	seen := make(map[domain.PrayerName]bool, len(day.Prayers))

	for _, prayer := range day.Prayers {
		// At most one reminder per (date, prayer); drop duplicate entries
		// from the prayer-data service.
		if seen[prayer.Name] {
			slog.WarnContext(ctx, "duplicate prayer entry, skipping",
				slog.String("prayer", prayer.Name.String()),
				slog.String("date", day.Date),
			)
			continue
		}
		seen[prayer.Name] = true

		if !settings.NotificationEnabled(prayer.Name) {
			result.SkippedDisabled = append(result.SkippedDisabled, prayer.Name)
			events = append(events, domain.ReminderEventRecord{
				Prayer: prayer.Name,
				Date:   day.Date,
				Event:  domain.EventSkippedOff,
			})
			s.metrics.RecordReminderProcessed(ctx, prayer.Name.String(), "skipped_disabled")
			continue
		}

		fireAt, err := prayer.FireInstant(day.Date, s.loc)
		if err != nil {
			slog.WarnContext(ctx, "invalid prayer time, skipping",
				slog.String("prayer", prayer.Name.String()),
				slog.String("date", day.Date),
				slog.String("error", err.Error()),
			)
			result.Failed = append(result.Failed, prayer.Name)
			events = append(events, domain.ReminderEventRecord{
				Prayer: prayer.Name,
				Date:   day.Date,
				Event:  domain.EventScheduleFailed,
			})
			s.metrics.RecordReminderProcessed(ctx, prayer.Name.String(), "failed")
			continue
		}

		if !fireAt.After(at) {
			result.SkippedPast = append(result.SkippedPast, prayer.Name)
			events = append(events, domain.ReminderEventRecord{
				Prayer: prayer.Name,
				Date:   day.Date,
				Event:  domain.EventSkippedPast,
				FireAt: fireAt,
			})
			s.metrics.RecordReminderProcessed(ctx, prayer.Name.String(), "skipped_past")
			continue
		}

		resp, err := s.gateway.Schedule(ctx, &notifygate.ScheduleRequest{
			FireAt: fireAt,
			Payload: domain.NotificationPayload{
				Type:       domain.KindPrayerTime,
				Prayer:     prayer.Name,
				Time:       prayer.Time,
				Date:       day.Date,
				Adjustment: prayer.Adjustment,
			},
			Actions: notifygate.ReminderActions(),
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to schedule reminder",
				slog.String("prayer", prayer.Name.String()),
				slog.String("date", day.Date),
				slog.Time("fire_at", fireAt),
				slog.String("error", err.Error()),
			)
			result.Failed = append(result.Failed, prayer.Name)
			events = append(events, domain.ReminderEventRecord{
				Prayer: prayer.Name,
				Date:   day.Date,
				Event:  domain.EventScheduleFailed,
				FireAt: fireAt,
			})
			s.metrics.RecordReminderProcessed(ctx, prayer.Name.String(), "failed")
			continue
		}

		result.Scheduled = append(result.Scheduled,
			domain.NewScheduledNotification(resp.ID, prayer.Name, prayer.Time, day.Date))
		events = append(events, domain.ReminderEventRecord{
			Prayer: prayer.Name,
			Date:   day.Date,
			Event:  domain.EventScheduled,
			FireAt: fireAt,
		})
		s.metrics.RecordReminderProcessed(ctx, prayer.Name.String(), "scheduled")

		slog.InfoContext(ctx, "reminder scheduled",
			slog.String("prayer", prayer.Name.String()),
			slog.String("date", day.Date),
			slog.Time("fire_at", fireAt),
			slog.String("task_id", resp.ID),
		)
	}

	if err := s.scheduleStore.SaveDay(ctx, day.Date, result.Scheduled); err != nil {
		tracing.RecordScheduleDayResult(span,
			len(result.Scheduled), len(result.SkippedDisabled)+len(result.SkippedPast), len(result.Failed), err)
		return nil, fmt.Errorf("failed to persist schedule for %s: %w", day.Date, err)
	}

	if err := s.recorder.RecordEvents(ctx, events); err != nil {
		slog.WarnContext(ctx, "failed to record reminder events", slog.String("error", err.Error()))
	}

	s.metrics.RecordScheduleDayDuration(ctx, time.Since(start))
	tracing.RecordScheduleDayResult(span,
		len(result.Scheduled), len(result.SkippedDisabled)+len(result.SkippedPast), len(result.Failed), nil)

	return result, nil
}

// CancelForDate cancels every stored notification for the date and drops the
// day's schedule record. Gateway cancellation is best effort per entry: a
// failed cancel is logged and the sweep continues. Returns the number of
// cancel requests that succeeded.
func (s *Service) CancelForDate(ctx context.Context, date string) (int, error) {
	existing, err := s.scheduleStore.GetDay(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return 0, nil
		}
		return 0, err
	}

	cancelled := 0
	for _, n := range existing {
		if err := s.gateway.Cancel(ctx, n.ID); err != nil {
			slog.WarnContext(ctx, "failed to cancel scheduled reminder",
				slog.String("prayer", n.Prayer.String()),
				slog.String("date", date),
				slog.String("task_id", n.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		cancelled++
	}

	if err := s.scheduleStore.DeleteDay(ctx, date); err != nil {
		return cancelled, err
	}

	return cancelled, nil
}
