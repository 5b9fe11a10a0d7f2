package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a key-value cache with TTL support.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error
	Close() error
}

// Codec converts values to bytes for backends that store raw data.
type Codec[V any] interface {
	Encode(v V) ([]byte, error)
	Decode(data []byte) (V, error)
}

// JSONCodec is the default Codec.
type JSONCodec[V any] struct{}

// Encode implements Codec.
func (JSONCodec[V]) Encode(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return data, nil
}

// Decode implements Codec.
func (JSONCodec[V]) Decode(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrDecode, err)
	}
	return v, nil
}

// BytesCodec stores byte slices as is, e.g. already encoded bundles.
type BytesCodec struct{}

// Encode implements Codec.
func (BytesCodec) Encode(v []byte) ([]byte, error) {
	return v, nil
}

// Decode implements Codec.
func (BytesCodec) Decode(data []byte) ([]byte, error) {
	return data, nil
}

// Loader fills a cache on misses. Concurrent misses for the same key share
// a single call to the load function.
type Loader[V any] struct {
	cache  Cache[V]
	ttl    time.Duration
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

// NewLoader wraps c. Loaded values are stored with ttl (zero means the cache default).
func NewLoader[V any](c Cache[V], ttl time.Duration) *Loader[V] {
	return &Loader[V]{cache: c, ttl: ttl}
}

// Load returns the cached value for key or computes it with fn.
// A failing fn is not cached. Storing the result is best effort: a cache
// write error never hides a successfully loaded value.
func (l *Loader[V]) Load(ctx context.Context, key string, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := l.cache.Get(ctx, key); err == nil {
		l.hits.Add(1)
		return v, nil
	}
	l.misses.Add(1)

	v, err, _ := l.group.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		_ = l.cache.Set(ctx, key, val, l.ttl)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Purge drops every cached value.
func (l *Loader[V]) Purge(ctx context.Context) error {
	return l.cache.Clear(ctx)
}

// Stats returns the number of cache hits and misses seen by Load.
func (l *Loader[V]) Stats() (hits, misses int64) {
	return l.hits.Load(), l.misses.Load()
}
