package notifygate

import (
	"time"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
)

// ActionSpec describes one action button attached to a notification.
type ActionSpec struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ReminderActions is the standard button set carried by every prayer reminder.
func ReminderActions() []ActionSpec {
	return []ActionSpec{
		{ID: domain.ActionSnooze, Title: "Snooze"},
		{ID: domain.ActionStop, Title: "Stop"},
	}
}

type ScheduleRequest struct {
	FireAt  time.Time
	Payload domain.NotificationPayload
	Actions []ActionSpec
}

type ScheduleResponse struct {
	ID           string
	ScheduleTime time.Time
	CreateTime   time.Time
}

// deliveryBody is what the gateway posts back to the callback endpoint.
type deliveryBody struct {
	Payload domain.NotificationPayload `json:"payload"`
	Actions []ActionSpec               `json:"actions,omitempty"`
}

type misbahTaskRequest struct {
	Task misbahTask `json:"task"`
}

type misbahTask struct {
	HTTPRequest  misbahHTTPRequest `json:"httpRequest"`
	ScheduleTime string            `json:"scheduleTime,omitempty"`
}

type misbahHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type misbahTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
