package i18n

// Bundle is the payload a client needs to run its own catalog for one locale.
type Bundle struct {
	Locale           string         `json:"locale"`
	DefaultLocale    string         `json:"default_locale"`
	FallbackLocale   string         `json:"fallback_locale,omitempty"`
	PluralCategories []string       `json:"plural_categories"`
	Translations     map[string]any `json:"translations"`
	Extras           map[string]any `json:"extras,omitempty"`
}

// Bundle returns the translations of locale together with the default
// locale's tree, so the client can fall back without another request.
func (c *Catalog) Bundle(locale string) (Bundle, error) {
	if locale == "" {
		return Bundle{}, ErrEmptyLocale
	}
	if !c.HasLocale(locale) {
		return Bundle{}, &LocaleNotSupportedError{Locale: locale}
	}

	translations := map[string]any{locale: c.store[locale]}
	if locale != c.defaultLocale {
		if tree, ok := c.store[c.defaultLocale]; ok {
			translations[c.defaultLocale] = tree
		}
	}

	b := Bundle{
		Locale:           locale,
		DefaultLocale:    c.defaultLocale,
		FallbackLocale:   c.FallbackLocale(),
		PluralCategories: SupportedPluralForms(c.PluralRuleFor(locale)),
		Translations:     translations,
	}
	if extras := c.Extras(); extras != nil {
		if tree, ok := extras[locale]; ok {
			b.Extras = map[string]any{locale: tree}
		}
	}
	return b, nil
}
