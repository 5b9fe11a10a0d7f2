package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func TestLocaleTranslator(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)

	t.Run("binds locale", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewLocaleTranslator(c, "sl")
		require.Equal(t, "sl", tr.Locale())
		require.Equal(t, "Živjo, Ana!", tr.T("hello", i18n.M{"name": "Ana"}))
		require.Equal(t, "3 datoteke", tr.Tn("files", 3))
		require.Equal(t, "English only", tr.T("only_en"))
	})

	t.Run("empty locale uses current catalog locale", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewLocaleTranslator(c, "")
		require.Equal(t, "en", tr.Locale())
	})

	t.Run("explicit locale option wins", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewLocaleTranslator(c, "sl")
		require.Equal(t, "Hello, Ana!", tr.Translate("hello", i18n.Options{Locale: "en", Vars: i18n.M{"name": "Ana"}}))
	})

	t.Run("number helpers", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewLocaleTranslator(c, "en")
		require.Equal(t, "1,234.500", tr.ToNumber(1234.5))
		require.Equal(t, "1.5KB", tr.ToHumanSize(1536))
		require.Equal(t, "$2.00", tr.ToCurrency(2))
		require.Equal(t, "50.000%", tr.ToPercentage(50))
	})

	t.Run("decorated translator", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewLocaleTranslator(c, "sl").Decorate(i18n.NewVerbose(c, nil))
		require.Equal(t, "Živjo, Ana! (#1)", tr.T("hello", i18n.M{"name": "Ana"}))
		require.Equal(t, "2 datoteki (#2)", tr.Tn("files", 2))
	})

	t.Run("panics without catalog", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { i18n.NewLocaleTranslator(nil, "en") })
	})
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)

	t.Run("without translator returns scope", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		require.Equal(t, "hello", i18n.T(ctx, "hello"))
		require.Equal(t, "files", i18n.Tn(ctx, "files", 2))
		require.Empty(t, i18n.LocaleFromContext(ctx))
		_, ok := i18n.TranslatorFromContext(ctx)
		require.False(t, ok)
	})

	t.Run("with translator", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.WithTranslator(context.Background(), i18n.NewLocaleTranslator(c, "sl"))
		require.Equal(t, "Živjo, Ana!", i18n.T(ctx, "hello", i18n.M{"name": "Ana"}))
		require.Equal(t, "5 datotek", i18n.Tn(ctx, "files", 5))
		require.Equal(t, "sl", i18n.LocaleFromContext(ctx))
	})
}

func TestBundle(t *testing.T) {
	t.Parallel()

	c := newCatalog(t,
		i18n.WithFallbackLocale("en"),
		i18n.WithExtras(i18n.Store{"sl": map[string]any{"admin_js": map[string]any{"x": "y"}}}),
	)

	t.Run("includes locale and default trees", func(t *testing.T) {
		t.Parallel()
		b, err := c.Bundle("sl")
		require.NoError(t, err)
		require.Equal(t, "sl", b.Locale)
		require.Equal(t, "en", b.DefaultLocale)
		require.Equal(t, "en", b.FallbackLocale)
		require.Equal(t, []string{"one", "two", "few", "other"}, b.PluralCategories)
		require.Contains(t, b.Translations, "sl")
		require.Contains(t, b.Translations, "en")
		require.Equal(t, map[string]any{"sl": map[string]any{"admin_js": map[string]any{"x": "y"}}}, b.Extras)
	})

	t.Run("default locale bundle has single tree", func(t *testing.T) {
		t.Parallel()
		b, err := c.Bundle("en")
		require.NoError(t, err)
		require.Len(t, b.Translations, 1)
		require.Nil(t, b.Extras)
	})

	t.Run("unknown locale", func(t *testing.T) {
		t.Parallel()
		_, err := c.Bundle("de")
		var notSupported *i18n.LocaleNotSupportedError
		require.True(t, errors.As(err, &notSupported))
		require.Equal(t, "de", notSupported.Locale)
	})

	t.Run("empty locale", func(t *testing.T) {
		t.Parallel()
		_, err := c.Bundle("")
		require.ErrorIs(t, err, i18n.ErrEmptyLocale)
	})
}
