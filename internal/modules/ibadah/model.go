// README: Daily ibadah log (prayers, Quran verses, dhikr) and errors.
package ibadah

import (
	"errors"
	"time"

	"ibadah/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("log not found")
)

const dayLayout = "2006-01-02"

// DailyLog is one user's counters for one calendar day.
type DailyLog struct {
	UserID      types.ID  `json:"user_id"`
	Day         string    `json:"day"`
	Prayers     int       `json:"prayers"`
	QuranVerses int       `json:"quran_verses"`
	DhikrCount  int       `json:"dhikr_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// History is a window of daily logs with their sums. Days without a log are
// absent from Logs.
type History struct {
	From   string     `json:"from"`
	To     string     `json:"to"`
	Logs   []DailyLog `json:"logs"`
	Totals Delta      `json:"totals"`
}

// MaxHistoryDays bounds one History request.
const MaxHistoryDays = 366

// Delta is added to today's counters. Zero fields leave a counter unchanged.
type Delta struct {
	Prayers     int `json:"prayers"`
	QuranVerses int `json:"quran_verses"`
	DhikrCount  int `json:"dhikr_count"`
}

func (d Delta) validate() error {
	if d.Prayers < 0 || d.QuranVerses < 0 || d.DhikrCount < 0 {
		return errors.Join(ErrBadRequest, errors.New("counters can only grow"))
	}
	if d.Prayers == 0 && d.QuranVerses == 0 && d.DhikrCount == 0 {
		return errors.Join(ErrBadRequest, errors.New("empty delta"))
	}
	return nil
}

// Schema creates the daily_logs table. Applied by EnsureSchema at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS daily_logs (
	uid          TEXT NOT NULL,
	day          DATE NOT NULL,
	prayers      INT  NOT NULL DEFAULT 0,
	quran_verses INT  NOT NULL DEFAULT 0,
	dhikr_count  INT  NOT NULL DEFAULT 0,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (uid, day)
)`
