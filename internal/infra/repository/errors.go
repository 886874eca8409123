package repository

import "errors"

var (
	ErrRedisConnection     = errors.New("redis connection error")
	ErrInvalidScheduleData = errors.New("invalid schedule data")
	ErrInvalidSnoozeData   = errors.New("invalid snooze data")
)
