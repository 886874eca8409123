package scheduler

import (
	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
)

// Result summarizes one day-scheduling run. A prayer appears in exactly one
// of the four buckets.
type Result struct {
	Date            string
	Scheduled       []domain.ScheduledNotification
	SkippedDisabled []domain.PrayerName
	SkippedPast     []domain.PrayerName
	Failed          []domain.PrayerName
}
