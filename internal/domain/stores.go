package domain

import "context"

//go:generate mockgen -source=stores.go -destination=stores_mock.go -package=domain

// ScheduleStore holds the day's scheduled notifications, at most one entry
// per (date, prayer).
type ScheduleStore interface {
	SaveDay(ctx context.Context, date string, notifications []ScheduledNotification) error
	GetDay(ctx context.Context, date string) ([]ScheduledNotification, error)
	DeleteDay(ctx context.Context, date string) error
	ListDates(ctx context.Context) ([]string, error)
	MarkNotified(ctx context.Context, date string, prayer PrayerName) error
}

// SnoozeTracker holds the per-(date, prayer) snooze chain state.
type SnoozeTracker interface {
	Save(ctx context.Context, date string, info *SnoozeInfo) error
	Get(ctx context.Context, date string, prayer PrayerName) (*SnoozeInfo, error)
	Delete(ctx context.Context, date string, prayer PrayerName) error
}

// RecreationMarker records the last date for which the full daily
// cancel-and-reschedule cycle completed.
type RecreationMarker interface {
	LastRecreatedDate(ctx context.Context) (string, error)
	SetLastRecreatedDate(ctx context.Context, date string) error
}
