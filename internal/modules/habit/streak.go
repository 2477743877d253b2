package habit

import "time"

// Streak counts consecutive completed calendar days ending today. If today is
// not marked yet the run ending yesterday still counts, so a streak is not
// lost before the day is over.
func Streak(r Record, today time.Time) int {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if !r.Days[day.Format(DayLayout)] {
		day = day.AddDate(0, 0, -1)
	}

	n := 0
	for r.Days[day.Format(DayLayout)] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}
