package recreation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
	"github.com/misbahapp/prayer-notification-scheduling/internal/infra/prayerdata"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/metrics"
	"github.com/misbahapp/prayer-notification-scheduling/internal/observability/tracing"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/scheduler"
)

// Outcome reports what one recreation attempt did.
type Outcome struct {
	Ran            bool
	Date           string
	CancelledDates int
	Schedule       *scheduler.Result
}

// Coordinator runs the once-per-day cancel-and-reschedule cycle. A mutex
// serializes concurrent triggers within the process and the last-recreated
// marker is checked inside the critical section, so one trigger does the work
// and the rest observe the advanced marker and no-op.
type Coordinator struct {
	mu sync.Mutex

	source        prayerdata.Source
	scheduler     *scheduler.Service
	scheduleStore domain.ScheduleStore
	marker        domain.RecreationMarker
	metrics       *metrics.ReminderMetrics
	loc           *time.Location
	now           func() time.Time
}

func NewCoordinator(
	source prayerdata.Source,
	schedulerService *scheduler.Service,
	scheduleStore domain.ScheduleStore,
	marker domain.RecreationMarker,
	reminderMetrics *metrics.ReminderMetrics,
	loc *time.Location,
) *Coordinator {
	return &Coordinator{
		source:        source,
		scheduler:     schedulerService,
		scheduleStore: scheduleStore,
		marker:        marker,
		metrics:       reminderMetrics,
		loc:           loc,
		now:           time.Now,
	}
}

// RecreateIfNeeded runs the daily cycle for the current date unless it
// already completed today.
func (c *Coordinator) RecreateIfNeeded(ctx context.Context) (*Outcome, error) {
	return c.RecreateIfNeededAt(ctx, c.now())
}

// RecreateIfNeededAt is RecreateIfNeeded with an explicit reference instant.
// The marker only advances after the whole cycle succeeds, so a failed
// attempt is retried by the next trigger.
func (c *Coordinator) RecreateIfNeededAt(ctx context.Context, at time.Time) (*Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := domain.DateKey(at, c.loc)

	ctx, span := tracing.StartRecreationSpan(ctx, today)
	defer span.End()

	start := time.Now()

	last, err := c.marker.LastRecreatedDate(ctx)
	if err != nil {
		tracing.RecordRecreationResult(span, 0, false, err)
		return nil, fmt.Errorf("failed to read recreation marker: %w", err)
	}

	// The marker only moves forward by calendar date. YYYY-MM-DD keys order
	// lexicographically, so a plain string compare covers both the
	// already-ran-today case and a trigger dated before the marker.
	if last != "" && today <= last {
		if today < last {
			slog.WarnContext(ctx, "recreation trigger predates marker, skipping",
				slog.String("date", today),
				slog.String("marker", last),
			)
		} else {
			slog.DebugContext(ctx, "recreation already completed today", slog.String("date", today))
		}
		c.metrics.RecordRecreationRun(ctx, "noop", time.Since(start))
		tracing.RecordRecreationResult(span, 0, false, nil)
		return &Outcome{Ran: false, Date: today}, nil
	}

	day, err := c.source.GetDayPrayerTimes(ctx, today)
	if err != nil {
		c.metrics.RecordRecreationRun(ctx, "failed", time.Since(start))
		tracing.RecordRecreationResult(span, 0, false, err)
		return nil, fmt.Errorf("failed to fetch prayer times for %s: %w", today, err)
	}

	settings, err := c.source.GetSettings(ctx)
	if err != nil {
		c.metrics.RecordRecreationRun(ctx, "failed", time.Since(start))
		tracing.RecordRecreationResult(span, 0, false, err)
		return nil, fmt.Errorf("failed to fetch prayer settings: %w", err)
	}

	// Sweep stale days (yesterday's leftovers and anything orphaned) before
	// scheduling today. Today's own date is handled by ScheduleDay's
	// cancel-then-schedule.
	dates, err := c.scheduleStore.ListDates(ctx)
	if err != nil {
		c.metrics.RecordRecreationRun(ctx, "failed", time.Since(start))
		tracing.RecordRecreationResult(span, 0, false, err)
		return nil, fmt.Errorf("failed to list stored schedule dates: %w", err)
	}

	cancelledDates := 0
	for _, date := range dates {
		if date == today {
			continue
		}
		if _, err := c.scheduler.CancelForDate(ctx, date); err != nil {
			slog.WarnContext(ctx, "failed to cancel stale schedule",
				slog.String("date", date),
				slog.String("error", err.Error()),
			)
			continue
		}
		cancelledDates++
	}

	result, err := c.scheduler.ScheduleDayAt(ctx, day, settings, at)
	if err != nil {
		c.metrics.RecordRecreationRun(ctx, "failed", time.Since(start))
		tracing.RecordRecreationResult(span, cancelledDates, false, err)
		return nil, fmt.Errorf("failed to schedule today's reminders: %w", err)
	}

	if err := c.marker.SetLastRecreatedDate(ctx, today); err != nil {
		c.metrics.RecordRecreationRun(ctx, "failed", time.Since(start))
		tracing.RecordRecreationResult(span, cancelledDates, true, err)
		return nil, fmt.Errorf("failed to advance recreation marker: %w", err)
	}

	c.metrics.RecordRecreationRun(ctx, "completed", time.Since(start))
	tracing.RecordRecreationResult(span, cancelledDates, true, nil)

	slog.InfoContext(ctx, "daily recreation completed",
		slog.String("date", today),
		slog.Int("cancelled_dates", cancelledDates),
		slog.Int("scheduled", len(result.Scheduled)),
		slog.Int("skipped_past", len(result.SkippedPast)),
		slog.Int("skipped_disabled", len(result.SkippedDisabled)),
		slog.Int("failed", len(result.Failed)),
	)

	return &Outcome{
		Ran:            true,
		Date:           today,
		CancelledDates: cancelledDates,
		Schedule:       result,
	}, nil
}
