package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/cache"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string]()
		defer c.Close()

		_, err := c.Get(ctx, "missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("stores and overwrites values", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[int]()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
		require.NoError(t, c.Set(ctx, "k", 2, time.Minute))
		v, err := c.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, 2, v)
		require.Equal(t, 1, c.Len())
	})

	t.Run("expires entries", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string](cache.WithCleanupInterval(0))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
		time.Sleep(5 * time.Millisecond)
		_, err := c.Get(ctx, "k")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("negative ttl never expires", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string](cache.WithDefaultTTL(time.Millisecond), cache.WithCleanupInterval(0))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "forever", "v", -1))
		require.NoError(t, c.Set(ctx, "default", "v", 0))
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "forever")
		require.NoError(t, err)
		_, err = c.Get(ctx, "default")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string](cache.WithMaxEntries(2))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
		require.NoError(t, c.Set(ctx, "b", "2", time.Minute))
		_, err := c.Get(ctx, "a")
		require.NoError(t, err)
		require.NoError(t, c.Set(ctx, "c", "3", time.Minute))

		_, err = c.Get(ctx, "b")
		require.ErrorIs(t, err, cache.ErrNotFound)
		_, err = c.Get(ctx, "a")
		require.NoError(t, err)
		_, err = c.Get(ctx, "c")
		require.NoError(t, err)
	})

	t.Run("sweeper removes expired entries", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string](cache.WithCleanupInterval(5 * time.Millisecond))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
		require.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("delete and clear", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string]()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "a", "1", 0))
		require.NoError(t, c.Set(ctx, "b", "2", 0))
		require.NoError(t, c.Delete(ctx, "a"))
		require.Equal(t, 1, c.Len())
		require.NoError(t, c.Clear(ctx))
		require.Equal(t, 0, c.Len())
	})

	t.Run("closed cache rejects operations", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string]()
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())

		require.ErrorIs(t, c.Set(ctx, "k", "v", 0), cache.ErrClosed)
		_, err := c.Get(ctx, "k")
		require.ErrorIs(t, err, cache.ErrClosed)
		require.ErrorIs(t, c.Delete(ctx, "k"), cache.ErrClosed)
		require.ErrorIs(t, c.Clear(ctx), cache.ErrClosed)
	})
}

func TestLoader(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("loads once and then hits", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[[]byte]()
		defer c.Close()
		l := cache.NewLoader[[]byte](c, time.Minute)

		var calls atomic.Int32
		load := func(context.Context) ([]byte, error) {
			calls.Add(1)
			return []byte(`{"locale":"sl"}`), nil
		}

		for range 3 {
			v, err := l.Load(ctx, "bundle:sl:v1", load)
			require.NoError(t, err)
			require.JSONEq(t, `{"locale":"sl"}`, string(v))
		}
		require.Equal(t, int32(1), calls.Load())

		hits, misses := l.Stats()
		require.Equal(t, int64(2), hits)
		require.Equal(t, int64(1), misses)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string]()
		defer c.Close()
		l := cache.NewLoader[string](c, time.Minute)

		boom := errors.New("boom")
		_, err := l.Load(ctx, "k", func(context.Context) (string, error) { return "", boom })
		require.ErrorIs(t, err, boom)

		v, err := l.Load(ctx, "k", func(context.Context) (string, error) { return "ok", nil })
		require.NoError(t, err)
		require.Equal(t, "ok", v)
	})

	t.Run("collapses concurrent loads", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string]()
		defer c.Close()
		l := cache.NewLoader[string](c, time.Minute)

		var calls atomic.Int32
		release := make(chan struct{})
		load := func(context.Context) (string, error) {
			calls.Add(1)
			<-release
			return "v", nil
		}

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := l.Load(ctx, "k", load)
				require.NoError(t, err)
				require.Equal(t, "v", v)
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		require.LessOrEqual(t, calls.Load(), int32(2))
	})

	t.Run("purge clears cache", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string]()
		defer c.Close()
		l := cache.NewLoader[string](c, time.Minute)

		_, err := l.Load(ctx, "k", func(context.Context) (string, error) { return "v", nil })
		require.NoError(t, err)
		require.NoError(t, l.Purge(ctx))
		require.Equal(t, 0, c.Len())
	})
}

func TestJSONCodec(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Locale string `json:"locale"`
	}
	codec := cache.JSONCodec[bundle]{}

	data, err := codec.Encode(bundle{Locale: "sl"})
	require.NoError(t, err)
	v, err := codec.Decode(data)
	require.NoError(t, err)
	require.Equal(t, "sl", v.Locale)

	_, err = codec.Decode([]byte("{"))
	require.ErrorIs(t, err, cache.ErrDecode)

	_, err = cache.JSONCodec[func()]{}.Encode(func() {})
	require.ErrorIs(t, err, cache.ErrEncode)
}

func TestBytesCodec(t *testing.T) {
	t.Parallel()

	var codec cache.Codec[[]byte] = cache.BytesCodec{}
	data, err := codec.Encode([]byte(`{"locale":"en"}`))
	require.NoError(t, err)
	v, err := codec.Decode(data)
	require.NoError(t, err)
	require.JSONEq(t, `{"locale":"en"}`, string(v))
}
