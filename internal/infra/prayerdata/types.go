package prayerdata

type prayerTimeResponse struct {
	Name       string `json:"name"`
	Time       string `json:"time"`
	Adjustment int    `json:"adjustment"`
}

type dayTimesResponse struct {
	Date    string               `json:"date"`
	Prayers []prayerTimeResponse `json:"prayers"`
}

type settingsResponse struct {
	Notifications   map[string]bool `json:"notifications"`
	EnableAdhan     bool            `json:"enable_adhan"`
	EnableVibration bool            `json:"enable_vibration"`
	MaxSnoozes      int             `json:"max_snoozes"`
	SnoozeDuration  int             `json:"snooze_duration"`
	Volume          float64         `json:"volume"`
}
