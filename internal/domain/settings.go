package domain

// PrayerSettings is the user's reminder configuration, supplied read-only by
// the settings store.
type PrayerSettings struct {
	Notifications   map[PrayerName]bool `json:"notifications"`
	EnableAdhan     bool                `json:"enable_adhan"`
	EnableVibration bool                `json:"enable_vibration"`
	MaxSnoozes      int                 `json:"max_snoozes"`
	SnoozeDuration  int                 `json:"snooze_duration"`
	Volume          float64             `json:"volume"`
}

// NotificationEnabled reports whether reminders are turned on for the prayer.
func (s PrayerSettings) NotificationEnabled(p PrayerName) bool {
	return s.Notifications[p]
}
