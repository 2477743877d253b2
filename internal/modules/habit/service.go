// README: Habit service toggles daily completion and reports streaks.
package habit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ibadah/internal/infra"
	"ibadah/internal/types"
)

type Service struct {
	docs infra.DocumentStore
}

func NewService(docs infra.DocumentStore) *Service {
	return &Service{docs: docs}
}

// Status is a habit's state as shown to the user.
type Status struct {
	Habit
	DoneToday bool `json:"done_today"`
	Streak    int  `json:"streak"`
}

// Toggle flips the completion flag of habit on day inside one atomic update
// and returns the new flag.
func (s *Service) Toggle(ctx context.Context, uid types.ID, key string, day time.Time) (bool, error) {
	if uid == "" {
		return false, ErrBadRequest
	}
	if _, ok := lookup(key); !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownHabit, key)
	}

	d := day.Format(DayLayout)
	var done bool
	err := s.docs.Update(ctx, docKey(uid, key), func(read func(any) error) (any, error) {
		var r Record
		if err := read(&r); err != nil && !errors.Is(err, infra.ErrDocumentNotFound) {
			return nil, err
		}
		if r.Days == nil {
			r.Days = make(map[string]bool)
		}
		r.Days[d] = !r.Days[d]
		done = r.Days[d]
		return r, nil
	})
	if err != nil {
		return false, err
	}
	return done, nil
}

// Status returns the habit's completion for today and its current streak.
func (s *Service) Status(ctx context.Context, uid types.ID, key string, today time.Time) (Status, error) {
	if uid == "" {
		return Status{}, ErrBadRequest
	}
	h, ok := lookup(key)
	if !ok {
		return Status{}, fmt.Errorf("%w: %q", ErrUnknownHabit, key)
	}

	r, err := s.load(ctx, uid, key)
	if err != nil {
		return Status{}, err
	}
	return Status{
		Habit:     h,
		DoneToday: r.Days[today.Format(DayLayout)],
		Streak:    Streak(r, today),
	}, nil
}

// List returns the status of every default habit.
func (s *Service) List(ctx context.Context, uid types.ID, today time.Time) ([]Status, error) {
	out := make([]Status, 0, len(Defaults))
	for _, h := range Defaults {
		st, err := s.Status(ctx, uid, h.Key, today)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *Service) load(ctx context.Context, uid types.ID, key string) (Record, error) {
	var r Record
	err := s.docs.Read(ctx, docKey(uid, key), &r)
	if err != nil && !errors.Is(err, infra.ErrDocumentNotFound) {
		return Record{}, err
	}
	if r.Days == nil {
		r.Days = make(map[string]bool)
	}
	return r, nil
}

func docKey(uid types.ID, habit string) string {
	return fmt.Sprintf("users/%s/habits/%s", string(uid), habit)
}
