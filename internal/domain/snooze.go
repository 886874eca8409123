package domain

// SnoozeInfo tracks the snooze chain for one (date, prayer) pair. It is
// created on the first snooze and deleted on stop or when the chain is
// exhausted; SnoozeCount never exceeds MaxSnoozes.
type SnoozeInfo struct {
	Prayer         PrayerName `json:"prayer"`
	OriginalTime   string     `json:"original_time"`
	SnoozeCount    int        `json:"snooze_count"`
	NextSnoozeTime string     `json:"next_snooze_time"`
	MaxSnoozes     int        `json:"max_snoozes"`
	SnoozeDuration int        `json:"snooze_duration"`
}
