package audiogate

import (
	"context"
)

//go:generate mockgen -source=gateway.go -destination=mock.go -package=audiogate

// SoundProfile describes how the reminder sound should be played on the
// device audio service.
type SoundProfile struct {
	Adhan  bool    `json:"adhan"`
	Volume float64 `json:"volume"`
}

// AudioGateway controls the device audio service that plays the adhan and
// drives haptic feedback when a reminder fires.
type AudioGateway interface {
	StartReminderSound(ctx context.Context, profile SoundProfile) error
	StopReminderSound(ctx context.Context, fadeOutSeconds int) error
	PulseHaptic(ctx context.Context, intensity float64) error
}
