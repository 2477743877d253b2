// README: In-memory infra.DocumentStore for tests. Documents round-trip through
// JSON so callers see copy semantics like a remote store.
package infratest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"ibadah/internal/infra"
)

type Documents struct {
	mu   sync.Mutex
	docs map[string][]byte

	// Err, when set, is returned by every operation.
	Err error
}

var _ infra.DocumentStore = (*Documents)(nil)

func NewDocuments() *Documents {
	return &Documents{docs: make(map[string][]byte)}
}

// Has reports whether a document exists at key.
func (d *Documents) Has(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.docs[key]
	return ok
}

func (d *Documents) Read(_ context.Context, key string, dst any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	b, ok := d.docs[key]
	if !ok {
		return infra.ErrDocumentNotFound
	}
	return json.Unmarshal(b, dst)
}

func (d *Documents) Write(_ context.Context, key string, value any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	return d.put(key, value)
}

// Increment merges the field into the existing document, leaving other
// fields untouched.
func (d *Documents) Increment(_ context.Context, key, field string, delta int64) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return 0, d.Err
	}

	doc := map[string]any{}
	if b, ok := d.docs[key]; ok {
		if err := json.Unmarshal(b, &doc); err != nil {
			return 0, err
		}
	}
	var current int64
	switch v := doc[field].(type) {
	case nil:
	case float64:
		current = int64(v)
	default:
		return 0, fmt.Errorf("field %s of %s is %T, not a number", field, key, v)
	}
	doc[field] = current + delta
	if err := d.put(key, doc); err != nil {
		return 0, err
	}
	return current + delta, nil
}

func (d *Documents) Update(_ context.Context, key string, fn infra.UpdateFunc) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}

	b, ok := d.docs[key]
	read := func(dst any) error {
		if !ok {
			return infra.ErrDocumentNotFound
		}
		return json.Unmarshal(b, dst)
	}
	value, err := fn(read)
	if err != nil {
		return err
	}
	return d.put(key, value)
}

func (d *Documents) put(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	d.docs[key] = b
	return nil
}
