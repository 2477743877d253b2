// README: Habit definitions, per-habit completion log and errors.
package habit

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownHabit = errors.New("unknown habit")
	ErrBadRequest   = errors.New("bad request")
)

// DayLayout is the key format of Record.Days.
const DayLayout = "2006-01-02"

type Habit struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Defaults is the catalogue offered to every user.
var Defaults = []Habit{
	{Key: "fasting", Title: "Fasting (Mon/Thu)"},
	{Key: "tahajjud", Title: "Tahajjud Prayer"},
	{Key: "reading", Title: "Islamic Book Reading"},
}

// Record is one user's log for one habit, keyed by DayLayout dates.
type Record struct {
	Days map[string]bool `firestore:"days" json:"days"`
}

func lookup(key string) (Habit, bool) {
	for _, h := range Defaults {
		if h.Key == key {
			return h, true
		}
	}
	return Habit{}, false
}

// ParseDay resolves the client's local calendar date. An empty value means
// now's UTC date. Any zone's local date lies within one day of the UTC date,
// so anything further away is rejected.
func ParseDay(value string, now time.Time) (time.Time, error) {
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	if value == "" {
		return today, nil
	}
	day, err := time.Parse(DayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
	}
	if diff := day.Sub(today); diff < -24*time.Hour || diff > 24*time.Hour {
		return time.Time{}, fmt.Errorf("%w: date %s is not today in any time zone", ErrBadRequest, value)
	}
	return day, nil
}
