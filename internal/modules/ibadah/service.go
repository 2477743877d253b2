// README: Ibadah service keeps one additive log per user per day.
package ibadah

import (
	"context"
	"time"

	"ibadah/internal/types"
)

type logStore interface {
	Ensure(ctx context.Context, uid types.ID, day string) error
	Add(ctx context.Context, uid types.ID, day string, d Delta) (DailyLog, error)
	Get(ctx context.Context, uid types.ID, day string) (DailyLog, error)
	Range(ctx context.Context, uid types.ID, from, to string) ([]DailyLog, error)
}

// Service orchestrates daily log reads and updates.
type Service struct {
	store logStore
	now   func() time.Time
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// EnsureToday creates today's zeroed log if the user has none yet.
func (s *Service) EnsureToday(ctx context.Context, uid types.ID) error {
	if uid == "" {
		return ErrBadRequest
	}
	return s.store.Ensure(ctx, uid, s.today())
}

// AddToToday adds d to today's counters and returns the updated log.
func (s *Service) AddToToday(ctx context.Context, uid types.ID, d Delta) (DailyLog, error) {
	if uid == "" {
		return DailyLog{}, ErrBadRequest
	}
	if err := d.validate(); err != nil {
		return DailyLog{}, err
	}
	return s.store.Add(ctx, uid, s.today(), d)
}

// Today returns today's log, creating it first when absent.
func (s *Service) Today(ctx context.Context, uid types.ID) (DailyLog, error) {
	if err := s.EnsureToday(ctx, uid); err != nil {
		return DailyLog{}, err
	}
	return s.store.Get(ctx, uid, s.today())
}

// Get returns the log for a past or current day in YYYY-MM-DD form.
func (s *Service) Get(ctx context.Context, uid types.ID, day string) (DailyLog, error) {
	if uid == "" {
		return DailyLog{}, ErrBadRequest
	}
	if _, err := time.Parse(dayLayout, day); err != nil {
		return DailyLog{}, ErrBadRequest
	}
	return s.store.Get(ctx, uid, day)
}

// History returns the last days calendar days ending today (1..MaxHistoryDays).
func (s *Service) History(ctx context.Context, uid types.ID, days int) (History, error) {
	if uid == "" || days < 1 || days > MaxHistoryDays {
		return History{}, ErrBadRequest
	}
	to := s.now().UTC()
	h := History{
		From: to.AddDate(0, 0, -(days - 1)).Format(dayLayout),
		To:   to.Format(dayLayout),
	}
	logs, err := s.store.Range(ctx, uid, h.From, h.To)
	if err != nil {
		return History{}, err
	}
	h.Logs = make([]DailyLog, 0, len(logs))
	for _, l := range logs {
		h.Logs = append(h.Logs, l)
		h.Totals.Prayers += l.Prayers
		h.Totals.QuranVerses += l.QuranVerses
		h.Totals.DhikrCount += l.DhikrCount
	}
	return h, nil
}

func (s *Service) today() string {
	return s.now().UTC().Format(dayLayout)
}
