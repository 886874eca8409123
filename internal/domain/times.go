package domain

import (
	"fmt"
	"time"
)

const (
	dateKeyLayout  = "2006-01-02"
	clockLayout    = "15:04"
	combinedLayout = "2006-01-02 15:04"
)

// PrayerTime is one prayer's wall-clock time for a day, as supplied by the
// prayer-time calculator. Adjustment is a signed user offset in minutes.
type PrayerTime struct {
	Name       PrayerName `json:"name"`
	Time       string     `json:"time"`
	Adjustment int        `json:"adjustment"`
}

// FireInstant combines a date key, the prayer's wall-clock time and its
// adjustment into an absolute instant in loc.
func (p PrayerTime) FireInstant(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(combinedLayout, date+" "+p.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid prayer time %q on %q: %w", p.Time, date, err)
	}
	return t.Add(time.Duration(p.Adjustment) * time.Minute), nil
}

// DayPrayerTimes is the full set of prayer times for one calendar day.
type DayPrayerTimes struct {
	Date    string       `json:"date"`
	Prayers []PrayerTime `json:"prayers"`
}

// DateKey formats an instant as the calendar-date key used throughout the
// store ("YYYY-MM-DD" in loc).
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateKeyLayout)
}

func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(dateKeyLayout, key)
}

// ClockKey formats an instant as a wall-clock string ("HH:MM" in loc).
func ClockKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(clockLayout)
}
