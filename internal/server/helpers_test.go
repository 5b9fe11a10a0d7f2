package server_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/internal/server"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/overrides"
)

func testCatalog(t *testing.T, opts ...i18n.Option) *i18n.Catalog {
	t.Helper()
	store := i18n.Store{
		"en": map[string]any{
			"js": map[string]any{
				"greeting": "Hello %{name}",
				"inbox": map[string]any{
					"one":   "1 message",
					"other": "%{count} messages",
				},
			},
		},
		"de": map[string]any{
			"js": map[string]any{
				"greeting": "Hallo %{name}",
			},
		},
	}
	c, err := i18n.New(append([]i18n.Option{i18n.WithStore(store)}, opts...)...)
	require.NoError(t, err)
	return c
}

// memOverrides is an in-memory overrides repository.
type memOverrides struct {
	mu      sync.Mutex
	list    []overrides.Override
	loadErr error
	loads   int
}

func (m *memOverrides) Load(context.Context) (i18n.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return overrides.BuildStore(m.list), nil
}

func (m *memOverrides) List(context.Context) ([]overrides.Override, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]overrides.Override(nil), m.list...), nil
}

func (m *memOverrides) Upsert(_ context.Context, o overrides.Override) error {
	if err := o.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.list {
		if m.list[i].Locale == o.Locale && m.list[i].Key == o.Key {
			m.list[i] = o
			return nil
		}
	}
	m.list = append(m.list, o)
	return nil
}

func (m *memOverrides) Import(ctx context.Context, locale string, tree map[string]any) (int, error) {
	list := overrides.Flatten(locale, tree)
	for _, o := range list {
		if err := m.Upsert(ctx, o); err != nil {
			return 0, err
		}
	}
	return len(list), nil
}

func (m *memOverrides) Delete(_ context.Context, locale, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.list {
		if o.Locale == locale && o.Key == key {
			m.list = append(m.list[:i], m.list[i+1:]...)
			return nil
		}
	}
	return overrides.ErrNotFound
}

var (
	_ i18n.Source          = (*memOverrides)(nil)
	_ server.OverrideStore = (*memOverrides)(nil)
)

var errUnavailable = errors.New("database unavailable")
