// Package store holds the in-memory record collections served by the catalog.
package store

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/talkincode/catalogd/internal/id"
)

// maxIDAttempts bounds id re-draws when a generated id is already taken.
const maxIDAttempts = 8

// Entity is implemented by every record type a Collection can hold.
type Entity interface {
	Key() string
}

// Schema builds and patches records of type T from loosely typed JSON fields.
//
// New must leave no side effects when it fails. Merge returns the updated
// copy of current and whether any recognized field was present in fields.
type Schema[T Entity] interface {
	Kind() string
	New(id string, fields map[string]any) (T, error)
	Merge(current T, fields map[string]any) (T, bool, error)
}

// IDGenerator produces candidate record ids.
type IDGenerator func() (string, error)

// Collection is an insertion-ordered, mutex-guarded set of records.
// Records are stored and returned by value.
type Collection[T Entity] struct {
	mu     sync.RWMutex
	schema Schema[T]
	newID  IDGenerator
	items  []T
}

// NewCollection creates an empty collection. A nil gen selects id.New.
func NewCollection[T Entity](schema Schema[T], gen IDGenerator) *Collection[T] {
	if gen == nil {
		gen = id.New
	}
	return &Collection[T]{
		schema: schema,
		newID:  gen,
		items:  make([]T, 0),
	}
}

// Kind returns the display name of the records held, e.g. "Product".
func (c *Collection[T]) Kind() string {
	return c.schema.Kind()
}

// List returns a copy of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(key string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(key)
	if i < 0 {
		var zero T
		return zero, &NotFoundError{Kind: c.schema.Kind(), ID: key}
	}
	return c.items[i], nil
}

// Create builds a record from fields under a fresh id and appends it.
func (c *Collection[T]) Create(fields map[string]any) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	key, err := c.freshID()
	if err != nil {
		return zero, err
	}
	rec, err := c.schema.New(key, fields)
	if err != nil {
		return zero, err
	}
	c.items = append(c.items, rec)
	return rec, nil
}

// Update applies the recognized fields present in fields to the record with
// the given id. Fields not mentioned keep their values.
func (c *Collection[T]) Update(key string, fields map[string]any) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexOf(key)
	if i < 0 {
		return zero, &NotFoundError{Kind: c.schema.Kind(), ID: key}
	}
	rec, applied, err := c.schema.Merge(c.items[i], fields)
	if err != nil {
		return zero, err
	}
	if !applied {
		return zero, ErrNothingToUpdate
	}
	c.items[i] = rec
	return rec, nil
}

// Delete removes the record with the given id.
func (c *Collection[T]) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(key)
	if i < 0 {
		return &NotFoundError{Kind: c.schema.Kind(), ID: key}
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// indexOf must be called with c.mu held.
func (c *Collection[T]) indexOf(key string) int {
	for i := range c.items {
		if c.items[i].Key() == key {
			return i
		}
	}
	return -1
}

// freshID must be called with c.mu held for writing.
func (c *Collection[T]) freshID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		key, err := c.newID()
		if err != nil {
			return "", errors.Wrap(err, "generate id")
		}
		if key != "" && c.indexOf(key) < 0 {
			return key, nil
		}
	}
	return "", errors.Errorf("no free %s id after %d attempts", c.schema.Kind(), maxIDAttempts)
}
