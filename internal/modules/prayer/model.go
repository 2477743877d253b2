// README: Prayer timetable types and errors.
package prayer

import (
	"errors"
	"time"

	// Timetable zones come from the provider; embed the tz database so
	// lookups work on minimal images.
	_ "time/tzdata"
)

var (
	ErrProviderUnavailable = errors.New("prayer times provider unavailable")
	ErrNoTimings           = errors.New("no prayer timings")
)

// DailyPrayers lists the obligatory prayers in the order they occur.
var DailyPrayers = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// Prayer is a named wall-clock time, "HH:MM" in the location's time zone.
type Prayer struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// Timings is one day's timetable for one location.
type Timings struct {
	Date     string   `json:"date"`
	TimeZone string   `json:"timezone"`
	Prayers  []Prayer `json:"prayers"`
}

// Upcoming is the next prayer resolved to an absolute instant.
type Upcoming struct {
	Prayer
	At        time.Time     `json:"at"`
	Remaining time.Duration `json:"remaining"`
}

// location returns the timetable's zone, falling back to fallback when the
// zone is empty or unknown to the host tz database.
func (t Timings) location(fallback *time.Location) *time.Location {
	if t.TimeZone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(t.TimeZone)
	if err != nil {
		return fallback
	}
	return loc
}

// localDay formats at as YYYY-MM-DD in zone; an empty or unknown zone falls
// back to UTC.
func localDay(at time.Time, zone string) string {
	return at.In(Timings{TimeZone: zone}.location(time.UTC)).Format("2006-01-02")
}
