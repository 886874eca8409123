package domain

// Action is the closed set of things a delivered notification can ask of the
// router. It is decoded once at the callback boundary so the router's switch
// is exhaustive over these three variants.
type Action interface {
	isAction()
}

// SnoozeAction defers the reminder by the configured snooze duration.
type SnoozeAction struct {
	Prayer       PrayerName
	OriginalTime string
	Date         string
}

// StopAction ends the reminder: sound fades out and the snooze chain is cleared.
type StopAction struct {
	Prayer PrayerName
	Date   string
}

// FireAction is a bare delivery with no button pressed.
type FireAction struct {
	Prayer PrayerName
	Date   string
	Kind   NotificationKind
}

func (SnoozeAction) isAction() {}
func (StopAction) isAction()   {}
func (FireAction) isAction()   {}

// DecodeAction maps a gateway (actionID, payload) callback onto the closed
// Action set. Unknown action ids are an error for the caller to log and drop.
func DecodeAction(actionID string, p NotificationPayload) (Action, error) {
	if !p.Prayer.IsValid() {
		return nil, ErrInvalidPrayerName
	}

	switch actionID {
	case ActionSnooze:
		originalTime := p.OriginalTime
		if originalTime == "" {
			originalTime = p.Time
		}
		return SnoozeAction{
			Prayer:       p.Prayer,
			OriginalTime: originalTime,
			Date:         p.Date,
		}, nil
	case ActionStop:
		return StopAction{
			Prayer: p.Prayer,
			Date:   p.Date,
		}, nil
	case ActionDefault, "":
		kind := p.Type
		if kind == "" {
			kind = KindPrayerTime
		}
		return FireAction{
			Prayer: p.Prayer,
			Date:   p.Date,
			Kind:   kind,
		}, nil
	default:
		return nil, ErrUnknownAction
	}
}
