package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "reminder.service"
)

type ReminderMetrics struct {
	remindersProcessed  metric.Int64Counter
	snoozesTotal        metric.Int64Counter
	recreationRuns      metric.Int64Counter
	scheduleDayDuration metric.Float64Histogram
	recreationDuration  metric.Float64Histogram
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	remindersProcessed, err := meter.Int64Counter(
		"reminder_notifications_total",
		metric.WithDescription("Total number of reminder notifications processed per outcome"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	snoozesTotal, err := meter.Int64Counter(
		"reminder_snoozes_total",
		metric.WithDescription("Total number of snooze requests per outcome"),
		metric.WithUnit("{snooze}"),
	)
	if err != nil {
		return nil, err
	}

	recreationRuns, err := meter.Int64Counter(
		"reminder_recreation_runs_total",
		metric.WithDescription("Total number of daily recreation attempts per outcome"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	scheduleDayDuration, err := meter.Float64Histogram(
		"reminder_schedule_day_duration_seconds",
		metric.WithDescription("Time spent scheduling a full day of reminders"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	recreationDuration, err := meter.Float64Histogram(
		"reminder_recreation_duration_seconds",
		metric.WithDescription("Daily recreation cycle duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		remindersProcessed:  remindersProcessed,
		snoozesTotal:        snoozesTotal,
		recreationRuns:      recreationRuns,
		scheduleDayDuration: scheduleDayDuration,
		recreationDuration:  recreationDuration,
	}, nil
}

func (m *ReminderMetrics) RecordReminderProcessed(ctx context.Context, prayer, outcome string) {
	m.remindersProcessed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("prayer", prayer),
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordSnooze(ctx context.Context, prayer string, accepted bool) {
	outcome := "accepted"
	if !accepted {
		outcome = "rejected"
	}
	m.snoozesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("prayer", prayer),
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordRecreationRun(ctx context.Context, outcome string, duration time.Duration) {
	m.recreationRuns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
	m.recreationDuration.Record(ctx, duration.Seconds())
}

func (m *ReminderMetrics) RecordScheduleDayDuration(ctx context.Context, duration time.Duration) {
	m.scheduleDayDuration.Record(ctx, duration.Seconds())
}
