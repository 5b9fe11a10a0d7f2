package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/internal/server"
	"github.com/dmitrymomot/lexicon/pkg/cache"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/overrides"
)

func TestNewServiceRequiresCatalog(t *testing.T) {
	t.Parallel()

	_, err := server.NewService(nil)
	require.Error(t, err)
}

func TestServiceReload(t *testing.T) {
	t.Parallel()

	store := &memOverrides{}
	svc, err := server.NewService(testCatalog(t), server.WithOverrides(store))
	require.NoError(t, err)

	initial := svc.Version()
	require.Len(t, initial, 16)

	require.NoError(t, svc.Reload(context.Background()))
	assert.Equal(t, initial, svc.Version(), "empty overrides keep the version")

	store.list = []overrides.Override{{Locale: "en", Key: "farewell", Value: "Bye"}}
	require.NoError(t, svc.Reload(context.Background()))
	assert.NotEqual(t, initial, svc.Version())
	assert.Equal(t, "Bye", svc.Translator("en").T("farewell"))
	assert.False(t, svc.LoadedAt().IsZero())
}

func TestServiceReloadKeepsExtrasOnError(t *testing.T) {
	t.Parallel()

	store := &memOverrides{list: []overrides.Override{{Locale: "en", Key: "farewell", Value: "Bye"}}}
	svc, err := server.NewService(testCatalog(t), server.WithOverrides(store))
	require.NoError(t, err)
	require.NoError(t, svc.Reload(context.Background()))
	version := svc.Version()

	store.loadErr = errUnavailable
	err = svc.Reload(context.Background())
	require.ErrorIs(t, err, server.ErrReload)
	require.ErrorIs(t, err, errUnavailable)

	assert.Equal(t, version, svc.Version())
	assert.Equal(t, "Bye", svc.Translator("en").T("farewell"))
}

func TestServiceReloadWithoutSource(t *testing.T) {
	t.Parallel()

	svc, err := server.NewService(testCatalog(t))
	require.NoError(t, err)
	require.NoError(t, svc.Reload(context.Background()))
}

func TestServiceVersionIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := server.NewService(testCatalog(t))
	require.NoError(t, err)
	b, err := server.NewService(testCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, a.Version(), b.Version())

	empty, err := server.NewService(testCatalog(t, i18n.WithExtras(i18n.Store{})))
	require.NoError(t, err)
	assert.Equal(t, a.Version(), empty.Version(), "empty extras hash like no extras")

	c, err := server.NewService(testCatalog(t, i18n.WithDefaultLocale("de")))
	require.NoError(t, err)
	assert.NotEqual(t, a.Version(), c.Version())
}

func TestServiceBundle(t *testing.T) {
	t.Parallel()

	mem := cache.NewMemory[[]byte]()
	t.Cleanup(func() { _ = mem.Close() })

	store := &memOverrides{list: []overrides.Override{{Locale: "de", Key: "greeting", Value: "Servus %{name}"}}}
	svc, err := server.NewService(testCatalog(t),
		server.WithOverrides(store),
		server.WithBundleCache(mem, time.Minute),
	)
	require.NoError(t, err)
	require.NoError(t, svc.Reload(context.Background()))

	data, version, err := svc.Bundle(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, svc.Version(), version)
	assert.Equal(t, 1, mem.Len())

	var b i18n.Bundle
	require.NoError(t, json.Unmarshal(data, &b))
	assert.Equal(t, "de", b.Locale)
	assert.Equal(t, "en", b.DefaultLocale)
	assert.Contains(t, b.Translations, "de")
	assert.Contains(t, b.Translations, "en")
	assert.Contains(t, b.Extras, "de")

	again, _, err := svc.Bundle(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, data, again)

	store.list = nil
	require.NoError(t, svc.Reload(context.Background()))
	assert.Equal(t, 0, mem.Len(), "changed content purges the cache")
}

func TestServiceBundleUnknownLocale(t *testing.T) {
	t.Parallel()

	svc, err := server.NewService(testCatalog(t))
	require.NoError(t, err)

	_, _, err = svc.Bundle(context.Background(), "xx")
	var notSupported *i18n.LocaleNotSupportedError
	require.True(t, errors.As(err, &notSupported))
	assert.Equal(t, "xx", notSupported.Locale)
}

func TestServiceVerbose(t *testing.T) {
	t.Parallel()

	svc, err := server.NewService(testCatalog(t, i18n.WithFallbacks(false)), server.WithVerbose())
	require.NoError(t, err)

	tr := svc.Translator("en")
	assert.Equal(t, "Hello Anna (#1)", tr.T("greeting", i18n.M{"name": "Anna"}))
	assert.Equal(t, "3 messages (#2)", tr.Tn("inbox", 3))
	assert.Equal(t, "Hello Bob (#1)", tr.T("greeting", i18n.M{"name": "Bob"}))
}
