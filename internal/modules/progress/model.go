// README: Rewards progress document, daily goals and errors.
package progress

import (
	"errors"
	"time"
)

var ErrBadRequest = errors.New("bad request")

const (
	// PrayerGoal and ZikrGoal are the targets shown next to the counters.
	PrayerGoal = 5
	ZikrGoal   = 50
	// CertificateStreak is the prayer streak, in days, that earns the
	// weekly certificate.
	CertificateStreak = 7
)

// fieldZikr must match the Progress.ZikrCompleted tag; Increment addresses
// the field by name.
const fieldZikr = "zikr_completed"

// Progress is stored at progress/{uid}.
type Progress struct {
	PrayersCompleted int64     `firestore:"prayers_completed" json:"prayers_completed"`
	ZikrCompleted    int64     `firestore:"zikr_completed" json:"zikr_completed"`
	Streak           int64     `firestore:"streak" json:"streak"`
	LastPrayerDay    string    `firestore:"last_prayer_day" json:"last_prayer_day,omitempty"`
	LastUpdate       time.Time `firestore:"last_update" json:"last_update"`
}

// Summary is Progress plus the goals and the certificate flag.
type Summary struct {
	Progress
	PrayerGoal  int  `json:"prayer_goal"`
	ZikrGoal    int  `json:"zikr_goal"`
	Certificate bool `json:"certificate"`
}

func summarize(p Progress) Summary {
	return Summary{
		Progress:    p,
		PrayerGoal:  PrayerGoal,
		ZikrGoal:    ZikrGoal,
		Certificate: p.Streak >= CertificateStreak,
	}
}

const dayLayout = "2006-01-02"

// advanceStreak records a prayer logged on day. Several prayers on the same
// day count once; a skipped day restarts the run.
func advanceStreak(p *Progress, day time.Time) {
	d := day.Format(dayLayout)
	switch p.LastPrayerDay {
	case d:
		return
	case day.AddDate(0, 0, -1).Format(dayLayout):
		p.Streak++
	default:
		p.Streak = 1
	}
	p.LastPrayerDay = d
}
