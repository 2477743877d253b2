// README: Missed-prayer (qadha) ledger and errors.
package qadha

import (
	"errors"
	"strings"
	"time"

	"ibadah/internal/modules/prayer"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnknownPrayer = errors.New("unknown prayer")
)

// Ledger counts prayers still owed, per daily prayer.
type Ledger struct {
	Missed      map[string]int64 `firestore:"missed" json:"missed"`
	LastUpdated *time.Time       `firestore:"last_updated" json:"last_updated,omitempty"`
}

// Total is the number of prayers still owed.
func (l Ledger) Total() int64 {
	var n int64
	for _, v := range l.Missed {
		n += v
	}
	return n
}

// normalize fills every daily prayer so clients always see all five.
func (l *Ledger) normalize() {
	if l.Missed == nil {
		l.Missed = make(map[string]int64, len(prayer.DailyPrayers))
	}
	for _, p := range prayer.DailyPrayers {
		if _, ok := l.Missed[p]; !ok {
			l.Missed[p] = 0
		}
	}
}

// canonical maps a case-insensitive prayer name to its display form.
func canonical(name string) (string, bool) {
	for _, p := range prayer.DailyPrayers {
		if strings.EqualFold(p, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return "", false
}
