// Package kvstore provides the persisted key-value substrate that holds
// session keys and mock collections. Values are plain strings; there is no
// expiry and no size limit.
package kvstore

import "context"

// Store is a durable string key-value store
type Store interface {
	// Get returns the value and true, or "" and false when the key is absent
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by stores backed by a remote service
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks s when it supports health checks
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Nop is the store used outside a persistent context: every read is absent
// and every write is dropped.
type Nop struct{}

var _ Store = Nop{}

func (Nop) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (Nop) Set(context.Context, string, string) error         { return nil }
func (Nop) Remove(context.Context, string) error              { return nil }

// namespaced prefixes every key of an underlying store
type namespaced struct {
	inner  Store
	prefix string
}

// Namespaced scopes s under prefix, so that separate clients do not see
// each other's keys.
func Namespaced(s Store, prefix string) Store {
	return &namespaced{inner: s, prefix: prefix}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Remove(ctx context.Context, key string) error {
	return n.inner.Remove(ctx, n.prefix+key)
}

func (n *namespaced) Ping(ctx context.Context) error {
	return Ping(ctx, n.inner)
}
