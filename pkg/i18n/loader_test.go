package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func translationsFS() fstest.MapFS {
	return fstest.MapFS{
		"client.en.json": {Data: []byte(`{"en": {"js": {"hello": "Hello", "buttons": {"save": "Save"}}}}`)},
		"admin/all.json": {Data: []byte(`{"en": {"js": {"buttons": {"cancel": "Cancel"}}}, "sl": {"js": {"hello": "Živjo"}}}`)},
		"client.sl.yaml": {Data: []byte("sl:\n  js:\n    files:\n      0: Ni datotek\n      one: \"%{count} datoteka\"\n      other: \"%{count} datotek\"\n")},
		"extra.sl.YML":   {Data: []byte("sl:\n  js:\n    buttons:\n      save: Shrani\n")},
		"README.md":      {Data: []byte("# translations")},
	}
}

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	t.Run("loads and merges fragments", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.New(i18n.WithJSONDir(translationsFS()))
		require.NoError(t, err)

		require.Equal(t, "Hello", c.T("hello"))
		require.Equal(t, "Save", c.T("buttons.save"))
		require.Equal(t, "Cancel", c.T("buttons.cancel"))
		require.Equal(t, "Živjo", c.T("hello", i18n.Options{Locale: "sl"}))
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.json": {Data: []byte(`{"en": `)}}
		_, err := i18n.New(i18n.WithJSONDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
		require.Contains(t, err.Error(), "bad.json")
	})

	t.Run("rejects non-map locale", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.json": {Data: []byte(`{"en": "oops"}`)}}
		_, err := i18n.New(i18n.WithJSONDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml and yml files", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.New(i18n.WithYAMLDir(translationsFS()))
		require.NoError(t, err)

		require.Equal(t, "Shrani", c.T("buttons.save", i18n.Options{Locale: "sl"}))
		require.Equal(t, "3 datotek", c.T("files", i18n.Options{Locale: "sl", Count: i18n.Count(3)}))
	})

	t.Run("numeric yaml keys become literal count keys", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.New(i18n.WithYAMLDir(translationsFS()))
		require.NoError(t, err)

		require.Equal(t, "Ni datotek", c.T("files", i18n.Options{Locale: "sl", Count: i18n.Count(0)}))
	})

	t.Run("rejects invalid YAML", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.New(i18n.WithYAMLDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}

func TestDirSource(t *testing.T) {
	t.Parallel()

	store, err := i18n.DirSource(translationsFS()).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"en", "sl"}, store.Locales())

	c, err := i18n.New(i18n.WithSource(context.Background(), i18n.DirSource(translationsFS())))
	require.NoError(t, err)
	require.Equal(t, "Shrani", c.T("buttons.save", i18n.Options{Locale: "sl"}))
	require.Equal(t, "Živjo", c.T("hello", i18n.Options{Locale: "sl"}))
}
