// README: Tasbeeh service keeps one persisted counter per user.
package tasbeeh

import (
	"context"
	"errors"
	"fmt"

	"ibadah/internal/infra"
	"ibadah/internal/types"
)

type Service struct {
	docs infra.DocumentStore
}

func NewService(docs infra.DocumentStore) *Service {
	return &Service{docs: docs}
}

// Get returns the user's counter; a user who never counted reads zero.
func (s *Service) Get(ctx context.Context, uid types.ID) (Counter, error) {
	if uid == "" {
		return Counter{}, ErrBadRequest
	}
	var c Counter
	err := s.docs.Read(ctx, docKey(uid), &c)
	if err != nil && !errors.Is(err, infra.ErrDocumentNotFound) {
		return Counter{}, err
	}
	return c, nil
}

// Increment atomically adds by (1..MaxStep) to the counter.
func (s *Service) Increment(ctx context.Context, uid types.ID, by int64) (Counter, error) {
	if uid == "" {
		return Counter{}, ErrBadRequest
	}
	if by < 1 || by > MaxStep {
		return Counter{}, fmt.Errorf("%w: step must be between 1 and %d", ErrBadRequest, MaxStep)
	}
	n, err := s.docs.Increment(ctx, docKey(uid), "count", by)
	if err != nil {
		return Counter{}, err
	}
	return Counter{Count: n}, nil
}

func (s *Service) Reset(ctx context.Context, uid types.ID) (Counter, error) {
	if uid == "" {
		return Counter{}, ErrBadRequest
	}
	if err := s.docs.Write(ctx, docKey(uid), Counter{}); err != nil {
		return Counter{}, err
	}
	return Counter{}, nil
}

func docKey(uid types.ID) string {
	return fmt.Sprintf("tasbeeh/%s", string(uid))
}
