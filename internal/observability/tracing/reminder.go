package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/misbahapp/prayer-notification-scheduling/internal/service"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

// InjectToHTTPRequest propagates the active trace context onto an outgoing
// HTTP request.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}

func StartScheduleDaySpan(ctx context.Context, date string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.schedule_day",
		trace.WithAttributes(
			attribute.String("schedule.date", date),
		),
	)
}

func StartRecreationSpan(ctx context.Context, date string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.daily_recreation",
		trace.WithAttributes(
			attribute.String("recreation.date", date),
		),
	)
}

func StartSnoozeSpan(ctx context.Context, prayer, date string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.snooze",
		trace.WithAttributes(
			attribute.String("prayer", prayer),
			attribute.String("date", date),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordScheduleDayResult(span trace.Span, scheduledCount, skippedCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("schedule.scheduled_count", scheduledCount),
		attribute.Int("schedule.skipped_count", skippedCount),
		attribute.Int("schedule.failed_count", failedCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordRecreationResult(span trace.Span, cancelledDates int, ran bool, err error) {
	span.SetAttributes(
		attribute.Int("recreation.cancelled_dates", cancelledDates),
		attribute.Bool("recreation.ran", ran),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordSnoozeResult(span trace.Span, accepted bool, snoozeCount int, nextFireAt time.Time, err error) {
	span.SetAttributes(
		attribute.Bool("snooze.accepted", accepted),
		attribute.Int("snooze.count", snoozeCount),
	)
	if accepted {
		span.SetAttributes(attribute.String("snooze.next_fire_at", nextFireAt.Format(time.RFC3339)))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
