// README: Document store collaborator backed by Cloud Firestore.
package infra

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidKey       = errors.New("invalid document key")
)

// DocumentStore reads and writes whole documents addressed by
// "collection/doc[/collection/doc...]" keys.
type DocumentStore interface {
	// Read decodes the document into dst, or returns ErrDocumentNotFound.
	Read(ctx context.Context, key string, dst any) error
	// Write replaces the document with value.
	Write(ctx context.Context, key string, value any) error
	// Increment atomically adds delta to an integer field, creating the
	// document when absent, and returns the new value.
	Increment(ctx context.Context, key, field string, delta int64) (int64, error)
	// Update atomically replaces the document with the value fn returns.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// UpdateFunc computes a document's new value. read decodes the current
// document into dst or returns ErrDocumentNotFound. fn may run more than once
// when the store retries on contention, so it must not keep state between
// calls.
type UpdateFunc func(read func(dst any) error) (any, error)

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(ctx context.Context, app *firebase.App) (*FirestoreStore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Firestore: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) doc(key string) (*firestore.DocumentRef, error) {
	ref := s.client.Doc(key)
	if ref == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return ref, nil
}

func (s *FirestoreStore) Read(ctx context.Context, key string, dst any) error {
	ref, err := s.doc(key)
	if err != nil {
		return err
	}
	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return ErrDocumentNotFound
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}
	if err := snap.DataTo(dst); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (s *FirestoreStore) Write(ctx context.Context, key string, value any) error {
	ref, err := s.doc(key)
	if err != nil {
		return err
	}
	if _, err := ref.Set(ctx, value); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *FirestoreStore) Increment(ctx context.Context, key, field string, delta int64) (int64, error) {
	ref, err := s.doc(key)
	if err != nil {
		return 0, err
	}

	var result int64
	err = s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current int64
		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return err
		default:
			v, err := snap.DataAt(field)
			if err == nil {
				if n, ok := v.(int64); ok {
					current = n
				}
			}
		}
		result = current + delta
		return tx.Set(ref, map[string]any{field: result}, firestore.MergeAll)
	})
	if err != nil {
		return 0, fmt.Errorf("incrementing %s.%s: %w", key, field, err)
	}
	return result, nil
}

func (s *FirestoreStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	ref, err := s.doc(key)
	if err != nil {
		return err
	}

	err = s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		read := func(dst any) error {
			if snap == nil || !snap.Exists() {
				return ErrDocumentNotFound
			}
			return snap.DataTo(dst)
		}
		value, err := fn(read)
		if err != nil {
			return err
		}
		return tx.Set(ref, value)
	})
	if err != nil {
		return fmt.Errorf("updating %s: %w", key, err)
	}
	return nil
}
