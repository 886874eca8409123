package domain

import (
	"errors"
	"testing"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name     string
		actionID string
		payload  NotificationPayload
		want     Action
		wantErr  error
	}{
		{
			name:     "snooze uses original_time when present",
			actionID: ActionSnooze,
			payload: NotificationPayload{
				Type:         KindPrayerSnooze,
				Prayer:       PrayerFajr,
				Date:         "2024-06-01",
				OriginalTime: "04:30",
				SnoozeCount:  1,
			},
			want: SnoozeAction{Prayer: PrayerFajr, OriginalTime: "04:30", Date: "2024-06-01"},
		},
		{
			name:     "snooze falls back to time field",
			actionID: ActionSnooze,
			payload: NotificationPayload{
				Type:   KindPrayerTime,
				Prayer: PrayerMaghrib,
				Time:   "19:45",
				Date:   "2024-06-01",
			},
			want: SnoozeAction{Prayer: PrayerMaghrib, OriginalTime: "19:45", Date: "2024-06-01"},
		},
		{
			name:     "stop",
			actionID: ActionStop,
			payload:  NotificationPayload{Type: KindPrayerTime, Prayer: PrayerIsha, Date: "2024-06-01"},
			want:     StopAction{Prayer: PrayerIsha, Date: "2024-06-01"},
		},
		{
			name:     "default fire",
			actionID: ActionDefault,
			payload:  NotificationPayload{Type: KindPrayerTime, Prayer: PrayerAsr, Date: "2024-06-01"},
			want:     FireAction{Prayer: PrayerAsr, Date: "2024-06-01", Kind: KindPrayerTime},
		},
		{
			name:     "empty action id is a bare fire",
			actionID: "",
			payload:  NotificationPayload{Type: KindPrayerSnooze, Prayer: PrayerFajr, Date: "2024-06-01"},
			want:     FireAction{Prayer: PrayerFajr, Date: "2024-06-01", Kind: KindPrayerSnooze},
		},
		{
			name:     "fire without type defaults to prayer_time",
			actionID: ActionDefault,
			payload:  NotificationPayload{Prayer: PrayerDhuhr, Date: "2024-06-01"},
			want:     FireAction{Prayer: PrayerDhuhr, Date: "2024-06-01", Kind: KindPrayerTime},
		},
		{
			name:     "unknown action id",
			actionID: "DISMISS",
			payload:  NotificationPayload{Type: KindPrayerTime, Prayer: PrayerFajr, Date: "2024-06-01"},
			wantErr:  ErrUnknownAction,
		},
		{
			name:     "invalid prayer name",
			actionID: ActionSnooze,
			payload:  NotificationPayload{Type: KindPrayerTime, Prayer: "sunrise", Date: "2024-06-01"},
			wantErr:  ErrInvalidPrayerName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAction(tt.actionID, tt.payload)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeAction() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParsePrayerName(t *testing.T) {
	for _, p := range AllPrayerNames() {
		parsed, err := ParsePrayerName(p.String())
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", p, err)
		}
		if parsed != p {
			t.Errorf("ParsePrayerName(%q) = %q", p, parsed)
		}
	}

	if _, err := ParsePrayerName("tahajjud"); !errors.Is(err, ErrInvalidPrayerName) {
		t.Errorf("expected ErrInvalidPrayerName, got %v", err)
	}
}
