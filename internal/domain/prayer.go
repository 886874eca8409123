package domain

// PrayerName identifies one of the five fixed daily prayers.
type PrayerName string

const (
	PrayerFajr    PrayerName = "fajr"
	PrayerDhuhr   PrayerName = "dhuhr"
	PrayerAsr     PrayerName = "asr"
	PrayerMaghrib PrayerName = "maghrib"
	PrayerIsha    PrayerName = "isha"
)

func (p PrayerName) String() string {
	return string(p)
}

func (p PrayerName) IsValid() bool {
	switch p {
	case PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha:
		return true
	}
	return false
}

// AllPrayerNames returns the five prayers in their daily order.
func AllPrayerNames() []PrayerName {
	return []PrayerName{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}
}

func ParsePrayerName(s string) (PrayerName, error) {
	p := PrayerName(s)
	if !p.IsValid() {
		return "", ErrInvalidPrayerName
	}
	return p, nil
}
