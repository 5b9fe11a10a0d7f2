package overrides

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/sanitizer"
)

// Override is a single site-specific translation value.
type Override struct {
	Locale    string    `db:"locale"          json:"locale"`
	Key       string    `db:"translation_key" json:"key"`
	Value     string    `db:"value"           json:"value"`
	UpdatedAt time.Time `db:"updated_at"      json:"updated_at"`
}

// Validate checks the locale and key and sanitizes the value in place.
func (o *Override) Validate() error {
	o.Locale = strings.TrimSpace(o.Locale)
	if o.Locale == "" {
		return ErrEmptyLocale
	}
	if err := validateKey(o.Key); err != nil {
		return err
	}
	o.Value = sanitizer.SanitizeTranslation(o.Value)
	return nil
}

func validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if slices.Contains(strings.Split(key, "."), "") {
		return fmt.Errorf("%w: %q has an empty segment", ErrInvalidKey, key)
	}
	return nil
}

// BuildStore nests overrides by locale and dotted key into an extras store.
// A deeper key replaces a leaf at the same path, so "inbox.count.one" turns
// "inbox.count" into a plural-form map.
func BuildStore(list []Override) i18n.Store {
	store := i18n.Store{}
	for _, o := range list {
		root, ok := store[o.Locale].(map[string]any)
		if !ok {
			root = map[string]any{}
			store[o.Locale] = root
		}

		parts := strings.Split(o.Key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[part] = child
			}
			node = child
		}

		last := parts[len(parts)-1]
		// Keep an existing subtree; a leaf never shadows more specific keys.
		if _, isMap := node[last].(map[string]any); isMap {
			continue
		}
		node[last] = o.Value
	}
	return store
}

// Flatten turns a nested translation tree into overrides for one locale.
// Keys are sorted so imports are deterministic.
func Flatten(locale string, tree map[string]any) []Override {
	var out []Override
	flatten(locale, "", tree, &out)
	return out
}

func flatten(locale, prefix string, node map[string]any, out *[]Override) {
	for _, k := range slices.Sorted(maps.Keys(node)) {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := node[k].(type) {
		case map[string]any:
			flatten(locale, key, v, out)
		case string:
			*out = append(*out, Override{Locale: locale, Key: key, Value: v})
		case nil:
		default:
			*out = append(*out, Override{Locale: locale, Key: key, Value: fmt.Sprint(v)})
		}
	}
}
