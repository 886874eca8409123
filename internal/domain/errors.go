package domain

import "errors"

var (
	ErrInvalidPrayerName = errors.New("invalid prayer name")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrSnoozeNotFound    = errors.New("snooze record not found")
	ErrUnknownAction     = errors.New("unknown notification action")
)
