// README: Progress service tracks logged prayers and zikr for the rewards screen.
package progress

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
	now  func() time.Time
}

func NewService(docs infra.DocumentStore) *Service {
	return &Service{docs: docs, now: time.Now}
}

// Get returns the user's progress, creating the zeroed document on first
// read.
func (s *Service) Get(ctx context.Context, uid types.ID) (Summary, error) {
	if uid == "" {
		return Summary{}, ErrBadRequest
	}
	var p Progress
	err := s.docs.Read(ctx, docKey(uid), &p)
	if err == nil {
		return summarize(p), nil
	}
	if !errors.Is(err, infra.ErrDocumentNotFound) {
		return Summary{}, err
	}

	err = s.docs.Update(ctx, docKey(uid), func(read func(any) error) (any, error) {
		p = Progress{}
		err := read(&p)
		if errors.Is(err, infra.ErrDocumentNotFound) {
			p = Progress{LastUpdate: s.now().UTC()}
			return p, nil
		}
		return p, err
	})
	if err != nil {
		return Summary{}, err
	}
	return summarize(p), nil
}

// LogPrayer counts one completed prayer and advances the daily streak.
func (s *Service) LogPrayer(ctx context.Context, uid types.ID) (Summary, error) {
	if uid == "" {
		return Summary{}, ErrBadRequest
	}
	var p Progress
	err := s.docs.Update(ctx, docKey(uid), func(read func(any) error) (any, error) {
		p = Progress{}
		if err := read(&p); err != nil && !errors.Is(err, infra.ErrDocumentNotFound) {
			return nil, err
		}
		now := s.now().UTC()
		p.PrayersCompleted++
		advanceStreak(&p, now)
		p.LastUpdate = now
		return p, nil
	})
	if err != nil {
		return Summary{}, err
	}
	return summarize(p), nil
}

// LogZikr counts one completed zikr with an atomic field increment.
func (s *Service) LogZikr(ctx context.Context, uid types.ID) (Summary, error) {
	if uid == "" {
		return Summary{}, ErrBadRequest
	}
	if _, err := s.docs.Increment(ctx, docKey(uid), fieldZikr, 1); err != nil {
		return Summary{}, err
	}
	return s.Get(ctx, uid)
}

func docKey(uid types.ID) string {
	return fmt.Sprintf("progress/%s", string(uid))
}
