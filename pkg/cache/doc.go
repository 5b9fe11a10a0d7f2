// Package cache provides the bundle cache used by the server: a generic
// Cache interface with in-memory (LRU + TTL) and Redis backends, and a
// Loader that fills the cache on misses while collapsing concurrent loads
// of the same key into one call.
//
//	loader := cache.NewLoader[[]byte](cache.NewMemory[[]byte](), 10*time.Minute)
//	body, err := loader.Load(ctx, "bundle:sl:v3", func(ctx context.Context) ([]byte, error) {
//		return encodeBundle(ctx, "sl")
//	})
package cache
