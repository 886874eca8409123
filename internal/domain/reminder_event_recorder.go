package domain

import (
	"context"
	"time"
)

// ReminderEvent is a lifecycle stage of one reminder, recorded for analytics.
type ReminderEvent string

const (
	EventScheduled      ReminderEvent = "scheduled"
	EventSkippedPast    ReminderEvent = "skipped_past"
	EventSkippedOff     ReminderEvent = "skipped_disabled"
	EventScheduleFailed ReminderEvent = "schedule_failed"
	EventFired          ReminderEvent = "fired"
	EventSnoozed        ReminderEvent = "snoozed"
	EventSnoozeRejected ReminderEvent = "snooze_rejected"
	EventStopped        ReminderEvent = "stopped"
)

type ReminderEventRecord struct {
	Prayer      PrayerName
	Date        string
	Event       ReminderEvent
	FireAt      time.Time
	SnoozeCount int
}

type ReminderEventRecorder interface {
	RecordEvents(ctx context.Context, records []ReminderEventRecord) error
	Flush(ctx context.Context) error
	Close() error
}
