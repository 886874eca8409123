package domain

// NotificationKind distinguishes an initial reminder from a snooze follow-up.
type NotificationKind string

const (
	KindPrayerTime   NotificationKind = "prayer_time"
	KindPrayerSnooze NotificationKind = "prayer_snooze"
)

// Gateway action button identifiers. ActionDefault is the bare notification
// fire with no button pressed.
const (
	ActionSnooze  = "SNOOZE"
	ActionStop    = "STOP"
	ActionDefault = "DEFAULT"
)

// NotificationPayload travels to the delivery gateway at schedule time and
// comes back verbatim when the notification fires or a button is tapped.
type NotificationPayload struct {
	Type         NotificationKind `json:"type"`
	Prayer       PrayerName       `json:"prayer"`
	Time         string           `json:"time,omitempty"`
	Date         string           `json:"date"`
	Adjustment   int              `json:"adjustment,omitempty"`
	OriginalTime string           `json:"original_time,omitempty"`
	SnoozeCount  int              `json:"snooze_count,omitempty"`
}
