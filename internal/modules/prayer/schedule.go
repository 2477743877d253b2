// README: Next-prayer scan over a daily timetable.
package prayer

import (
	"strconv"
	"strings"
	"time"
)

// NextPrayer returns the earliest prayer strictly after now on now's date in
// the timetable's zone. Entries that do not parse as HH:MM are skipped.
func NextPrayer(t Timings, now time.Time) (Upcoming, bool) {
	local := now.In(t.location(now.Location()))

	var best Upcoming
	found := false
	for _, p := range t.Prayers {
		at, ok := clockOn(local, p.Time)
		if !ok || !at.After(local) {
			continue
		}
		if !found || at.Before(best.At) {
			best = Upcoming{Prayer: p, At: at}
			found = true
		}
	}
	if found {
		best.Remaining = best.At.Sub(local)
	}
	return best, found
}

// FirstPrayer returns the earliest prayer of the timetable on day.
func FirstPrayer(t Timings, day time.Time) (Upcoming, bool) {
	local := day.In(t.location(day.Location()))
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())

	var best Upcoming
	found := false
	for _, p := range t.Prayers {
		at, ok := clockOn(midnight, p.Time)
		if !ok {
			continue
		}
		if !found || at.Before(best.At) {
			best = Upcoming{Prayer: p, At: at}
			found = true
		}
	}
	return best, found
}

// clockOn parses "HH:MM", optionally followed by a zone suffix such as
// "05:12 (EET)", and places it on day's date.
func clockOn(day time.Time, clock string) (time.Time, bool) {
	clock = strings.TrimSpace(clock)
	if i := strings.IndexByte(clock, ' '); i >= 0 {
		clock = clock[:i]
	}
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return time.Time{}, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), true
}
