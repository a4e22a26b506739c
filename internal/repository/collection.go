package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/rs/zerolog"
)

// keyedMutex hands out one mutex per collection key
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// collectionLocks is shared by every repository in the process
var collectionLocks = newKeyedMutex()

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock locks key and returns its unlock func
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// collection is a JSON array stored whole under a single key.
// Writers in this process are serialized per key; separate processes sharing
// the store can still overwrite each other.
type collection[T any] struct {
	store kvstore.Store
	key   string
	locks *keyedMutex
	log   zerolog.Logger
}

// load returns the stored items. A missing or unparsable value is an empty collection.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("Stored collection is not valid JSON, treating as empty")
		return nil, nil
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}

// update runs a read-modify-write under the collection lock. fn reports
// whether it changed the items; unchanged collections are not written back.
func (c *collection[T]) update(ctx context.Context, fn func(items []T) ([]T, bool)) error {
	unlock := c.locks.Lock(c.key)
	defer unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	items, changed := fn(items)
	if !changed {
		return nil
	}
	return c.save(ctx, items)
}
