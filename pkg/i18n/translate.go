package i18n

import (
	"strconv"
	"strings"
)

const (
	separator = "."
	// rootNamespace is the top-level segment every lookup path starts with.
	rootNamespace = "js"
)

// Scope joins path segments into a dotted key, skipping empty segments.
func Scope(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return strings.Join(segments, separator)
}

// Lookup resolves scope to its raw value: a string template, a plural-form
// map or a nested subtree. The path is prefixed with "js" unless it already
// starts with it. When the main store misses, the extras store is walked with
// the unprefixed path. On a total miss Lookup returns Options.DefaultValue and
// reports whether one was given.
func (c *Catalog) Lookup(scope string, opts ...Options) (any, bool) {
	o := mergeOptions(opts)
	locale := o.Locale
	if locale == "" {
		locale = c.Locale()
	}
	return c.lookup(locale, scope, o)
}

func (c *Catalog) lookup(locale, scope string, o Options) (any, bool) {
	if o.Scope != "" {
		scope = o.Scope + separator + scope
	}

	path := strings.Split(scope, separator)
	prefixed := path
	if path[0] != rootNamespace {
		prefixed = append([]string{rootNamespace}, path...)
	}

	if value, ok := walk(c.store[locale], prefixed); ok {
		return value, true
	}
	if extras := c.Extras(); extras != nil {
		if value, ok := walk(extras[locale], path); ok {
			return value, true
		}
	}
	return o.DefaultValue, o.DefaultValue != nil
}

// T is a shorthand for Translate.
func (c *Catalog) T(scope string, opts ...Options) string {
	return c.Translate(scope, opts...)
}

// Translate resolves scope to an interpolated string. Setting Options.Count
// selects a plural form. When the key is missing in the requested locale the
// fallback locale, the default locale and "en" are tried in turn, unless
// fallbacks are disabled. A total miss never fails: the result is a marker
// such as "[en.missing.key]".
func (c *Catalog) Translate(scope string, opts ...Options) string {
	o := mergeOptions(opts)
	current := o.Locale
	if current == "" {
		current = c.Locale()
	}

	req := translation{
		scope:         scope,
		current:       current,
		options:       o,
		ignoreMissing: c.fallbacks,
	}

	value, found := c.findPresent(current, req)
	if c.fallbacks {
		if fallback := c.FallbackLocale(); !found && fallback != "" {
			value, found = c.findPresent(fallback, req)
		}
		req.ignoreMissing = false
		if !found && current != c.defaultLocale {
			value, found = c.findPresent(c.defaultLocale, req)
		}
		if !found && current != DefaultLocale {
			value, found = c.findPresent(DefaultLocale, req)
		}
	}

	template, ok := value.(string)
	if !found || !ok {
		c.notifyMissing(current, scope)
		return missingTranslation(current, scope, "")
	}
	return Interpolate(template, o.interpolationVars())
}

// Pluralize selects the plural form of node for Options.Count (zero when unset).
// A literal key equal to the count wins over rule categories. A string node is
// returned unchanged. When no form matches, the missing marker is returned
// together with false.
func (c *Catalog) Pluralize(node any, scope string, opts ...Options) (string, bool) {
	o := mergeOptions(opts)
	locale := o.Locale
	if locale == "" {
		locale = c.Locale()
	}
	count := 0
	if o.Count != nil {
		count = *o.Count
	}

	value, ok := c.pluralize(node, scope, locale, locale, count, false)
	s, isString := value.(string)
	if !isString {
		return "", false
	}
	return s, ok
}

type translation struct {
	scope         string
	current       string
	options       Options
	ignoreMissing bool
}

// findPresent is findTranslation with an empty string counted as a miss,
// so blank entries fall through to the next locale.
func (c *Catalog) findPresent(locale string, req translation) (any, bool) {
	value, ok := c.findTranslation(locale, req)
	if s, isString := value.(string); ok && isString && s == "" {
		return nil, false
	}
	return value, ok
}

func (c *Catalog) findTranslation(locale string, req translation) (any, bool) {
	value, ok := c.lookup(locale, req.scope, req.options)
	if !ok || req.options.Count == nil {
		return value, ok
	}

	value, ok = c.pluralize(value, req.scope, locale, req.current, *req.options.Count, req.ignoreMissing)
	if !ok && !req.ignoreMissing {
		// the marker is a final answer and stops the fallback chain
		c.notifyMissing(req.current, req.scope)
		return value, true
	}
	return value, ok
}

// pluralize picks a form from a plural node using the rule of ruleLocale.
// Misses produce a marker for markerLocale unless ignoreMissing is set.
func (c *Catalog) pluralize(node any, scope, ruleLocale, markerLocale string, count int, ignoreMissing bool) (any, bool) {
	forms, ok := node.(map[string]any)
	if !ok {
		return node, true
	}

	if form, ok := forms[strconv.Itoa(count)].(string); ok {
		return form, true
	}

	if count < 0 {
		count = -count
	}
	categories := c.PluralRuleFor(ruleLocale)(count)
	for _, name := range categories.names {
		if form, ok := forms[name].(string); ok {
			return form, true
		}
	}

	if ignoreMissing {
		return nil, false
	}
	return missingTranslation(markerLocale, scope, categories.First()), false
}

func (c *Catalog) notifyMissing(locale, scope string) {
	if c.missingHandler != nil {
		c.missingHandler(locale, scope)
	}
}

// missingTranslation formats the marker returned instead of a translation:
// "[<locale>.<scope>]" or "[<locale>.<scope>.<category>]".
func missingTranslation(locale, scope, category string) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(locale)
	b.WriteString(separator)
	b.WriteString(scope)
	if category != "" {
		b.WriteString(separator)
		b.WriteString(category)
	}
	b.WriteString("]")
	return b.String()
}
