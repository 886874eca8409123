package prayerdata

import (
	"context"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
)

//go:generate mockgen -source=source.go -destination=mock.go -package=prayerdata

// Source supplies the read-only inputs of the scheduling core: the day's
// computed prayer times and the user's reminder settings.
type Source interface {
	GetDayPrayerTimes(ctx context.Context, date string) (*domain.DayPrayerTimes, error)
	GetSettings(ctx context.Context) (*domain.PrayerSettings, error)
}
