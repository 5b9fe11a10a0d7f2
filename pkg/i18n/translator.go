package i18n

import "slices"

// Translator is the entry point shared by the catalog and its decorators.
type Translator interface {
	Translate(scope string, opts ...Options) string
}

// LocaleTranslator binds a translator to a single locale so callers do not
// repeat it on every call. Number helpers always use the underlying catalog.
type LocaleTranslator struct {
	catalog    *Catalog
	translator Translator
	locale     string
}

// NewLocaleTranslator binds c to locale. Empty locale means the catalog's
// current locale at construction time.
func NewLocaleTranslator(c *Catalog, locale string) *LocaleTranslator {
	if c == nil {
		panic("i18n: catalog is not provided")
	}
	if locale == "" {
		locale = c.Locale()
	}
	return &LocaleTranslator{catalog: c, translator: c, locale: locale}
}

// Decorate returns a copy that translates through tr, for example a
// Verbose decorator around the same catalog.
func (t *LocaleTranslator) Decorate(tr Translator) *LocaleTranslator {
	if tr == nil {
		return t
	}
	clone := *t
	clone.translator = tr
	return &clone
}

// Translate implements Translator. The bound locale applies unless an option sets another.
func (t *LocaleTranslator) Translate(scope string, opts ...Options) string {
	return t.translator.Translate(scope, append(slices.Clip(opts), Options{Locale: t.locale})...)
}

// T translates scope with optional interpolation variables.
func (t *LocaleTranslator) T(scope string, vars ...M) string {
	opts := make([]Options, 0, len(vars))
	for _, v := range vars {
		opts = append(opts, Options{Vars: v})
	}
	return t.Translate(scope, opts...)
}

// Tn translates scope choosing the plural form for n.
func (t *LocaleTranslator) Tn(scope string, n int, vars ...M) string {
	opts := []Options{{Count: Count(n)}}
	for _, v := range vars {
		opts = append(opts, Options{Vars: v})
	}
	return t.Translate(scope, opts...)
}

// ToNumber formats n for the bound locale.
func (t *LocaleTranslator) ToNumber(n float64, opts ...NumberOption) string {
	return t.catalog.ToNumber(t.locale, n, opts...)
}

// ToHumanSize formats a byte count for the bound locale.
func (t *LocaleTranslator) ToHumanSize(bytes float64, opts ...NumberOption) string {
	return t.catalog.ToHumanSize(t.locale, bytes, opts...)
}

// ToCurrency formats money for the bound locale.
func (t *LocaleTranslator) ToCurrency(n float64, opts ...NumberOption) string {
	return t.catalog.ToCurrency(t.locale, n, opts...)
}

// ToPercentage formats a percentage for the bound locale.
func (t *LocaleTranslator) ToPercentage(n float64, opts ...NumberOption) string {
	return t.catalog.ToPercentage(t.locale, n, opts...)
}

// Locale returns the bound locale.
func (t *LocaleTranslator) Locale() string {
	return t.locale
}
