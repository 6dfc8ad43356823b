package utils

import (
	"log"
	"time"
)

// DayLayout is the wire format for observation dates.
const DayLayout = "2006-01-02"

func TimeNowAccra() time.Time {
	loc, err := time.LoadLocation("Africa/Accra")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return time.Now().In(loc)
}

// ParseDay parses a YYYY-MM-DD string into a UTC midnight timestamp.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}

// Day truncates a timestamp to UTC midnight. Observation dates carry day
// granularity only; everything written to the store goes through this.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MustDay is a convenience for literal seed datasets.
func MustDay(s string) time.Time {
	t, err := ParseDay(s)
	if err != nil {
		log.Fatal("Invalid seed date ", s, ": ", err)
	}
	return t
}
