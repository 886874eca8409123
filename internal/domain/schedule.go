package domain

// ScheduledNotification records one successfully requested reminder. ID is
// the opaque identifier issued by the delivery gateway and is the handle for
// later cancellation.
type ScheduledNotification struct {
	ID          string     `json:"id"`
	Prayer      PrayerName `json:"prayer"`
	Time        string     `json:"time"`
	Date        string     `json:"date"`
	IsScheduled bool       `json:"is_scheduled"`
}

func NewScheduledNotification(id string, prayer PrayerName, clock, date string) ScheduledNotification {
	return ScheduledNotification{
		ID:          id,
		Prayer:      prayer,
		Time:        clock,
		Date:        date,
		IsScheduled: true,
	}
}
