package tasks

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/goliatone/go-errors"
)

// Collection is a flat JSON document holding every record of one
// collection. Load reads the whole document; Replace rewrites it in
// full. There is no partial update.
//
// A missing file is not an error: it reads as an empty collection, so
// first use needs no initialization step.
type Collection[T any] struct {
	mu   sync.Mutex
	path string
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file location.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads and decodes the full collection.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Replace rewrites the full collection.
func (c *Collection[T]) Replace(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replace(records)
}

// Update runs fn over the loaded records and persists its result, all
// under the collection lock. Returning an error from fn aborts the
// write. This is the atomic check-and-insert primitive the account
// uniqueness invariant relies on.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	records, err = fn(records)
	if err != nil {
		return err
	}

	return c.replace(records)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, storeError(err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, storeError(err)
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}

func (c *Collection[T]) replace(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return storeError(err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return storeError(err)
	}

	return nil
}

func storeError(err error) error {
	return errors.Wrap(err, ErrStoreUnavailable.Category, ErrStoreUnavailable.Message).
		WithTextCode(ErrStoreUnavailable.TextCode).
		WithCode(errors.CodeInternal)
}
