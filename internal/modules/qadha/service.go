// README: Qadha service adjusts and resets missed-prayer counts.
package qadha

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

// Get returns the ledger with every daily prayer present. LastUpdated is nil
// until the first change.
func (s *Service) Get(ctx context.Context, uid types.ID) (Ledger, error) {
	if uid == "" {
		return Ledger{}, ErrBadRequest
	}
	var l Ledger
	err := s.docs.Read(ctx, docKey(uid), &l)
	if err != nil && !errors.Is(err, infra.ErrDocumentNotFound) {
		return Ledger{}, err
	}
	l.normalize()
	return l, nil
}

// Adjust adds delta to one prayer's count. Counts never drop below zero.
func (s *Service) Adjust(ctx context.Context, uid types.ID, name string, delta int64) (Ledger, error) {
	if uid == "" || delta == 0 {
		return Ledger{}, ErrBadRequest
	}
	p, ok := canonical(name)
	if !ok {
		return Ledger{}, fmt.Errorf("%w: %q", ErrUnknownPrayer, name)
	}

	var out Ledger
	err := s.docs.Update(ctx, docKey(uid), func(read func(any) error) (any, error) {
		var l Ledger
		if err := read(&l); err != nil && !errors.Is(err, infra.ErrDocumentNotFound) {
			return nil, err
		}
		l.normalize()
		l.Missed[p] = max(0, l.Missed[p]+delta)
		now := s.now().UTC()
		l.LastUpdated = &now
		out = l
		return l, nil
	})
	if err != nil {
		return Ledger{}, err
	}
	return out, nil
}

// Reset sets every count to zero.
func (s *Service) Reset(ctx context.Context, uid types.ID) (Ledger, error) {
	if uid == "" {
		return Ledger{}, ErrBadRequest
	}
	now := s.now().UTC()
	l := Ledger{LastUpdated: &now}
	l.normalize()
	if err := s.docs.Write(ctx, docKey(uid), l); err != nil {
		return Ledger{}, err
	}
	return l, nil
}

func docKey(uid types.ID) string {
	return fmt.Sprintf("qadha/%s", string(uid))
}
