package utils

import (
	"clinic-portal-service/internal/pkg/constvars"
	"time"
)

func ParseClinicDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, value, time.Local)
}

// NormalizeClinicTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS,
// the format the clinic backend stores appointment times in.
func NormalizeClinicTime(value string) (string, error) {
	parsed, err := time.Parse(constvars.TimeLayoutInput, value)
	if err != nil {
		parsed, err = time.Parse(constvars.TimeLayoutOutput, value)
		if err != nil {
			return "", err
		}
	}
	return parsed.Format(constvars.TimeLayoutOutput), nil
}

// CombineClinicSlot joins a date and a time into one instant in the local zone.
func CombineClinicSlot(date, clock string) (time.Time, error) {
	day, err := ParseClinicDate(date)
	if err != nil {
		return time.Time{}, err
	}
	normalized, err := NormalizeClinicTime(clock)
	if err != nil {
		return time.Time{}, err
	}
	hms, _ := time.Parse(constvars.TimeLayoutOutput, normalized)
	return time.Date(day.Year(), day.Month(), day.Day(), hms.Hour(), hms.Minute(), hms.Second(), 0, time.Local), nil
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsAfterToday reports whether day falls on a calendar date later than now.
func IsAfterToday(day, now time.Time) bool {
	return StartOfDay(day).After(StartOfDay(now.In(day.Location())))
}
