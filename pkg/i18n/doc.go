// Package i18n provides a locale-aware message catalog: dotted-key lookup over
// a nested translation store, locale fallback, CLDR-style pluralization and
// placeholder interpolation.
//
// # Basic Usage
//
// Every lookup path lives under the "js" namespace; the prefix is added
// automatically when the key does not start with it:
//
//	catalog, err := i18n.New(
//		i18n.WithDefaultLocale("en"),
//		i18n.WithStore(i18n.Store{
//			"en": map[string]any{"js": map[string]any{
//				"greeting": "Hello, %{name}!",
//				"items":    map[string]any{"one": "1 item", "other": "%{count} items"},
//			}},
//		}),
//	)
//
//	catalog.T("greeting", i18n.Vars(i18n.M{"name": "Ana"}))   // "Hello, Ana!"
//	catalog.T("items", i18n.Options{Count: i18n.Count(5)})    // "5 items"
//	catalog.T("missing.key")                                  // "[en.missing.key]"
//
// # Fallbacks
//
// A key missing in the requested locale is looked up in the fallback locale,
// then the default locale, then "en". Misses never fail: the result is a
// visible marker such as "[sl.missing.key]" or, for plural forms,
// "[sl.items.few]". Missing interpolation values render as
// "[missing %{name} value]".
//
// # Pluralization
//
// Plural rules return Categories, either a single category or an ordered list
// tried in turn. A literal count key ("0") always wins over rule categories.
// Built-in rules cover the common language families; locales without one use
// the English rule and a warning is logged. WithStrictPluralRules turns that
// into a construction error.
//
// # Extras
//
// A secondary store, set with WithExtras or SetExtras, is consulted when the
// main store misses. It holds runtime overrides and is walked without the
// "js" prefix.
//
// # Files
//
// WithJSONDir and WithYAMLDir load store fragments from an fs.FS. Each file
// holds locales at its top level, and fragments are deep-merged.
//
// # Thread Safety
//
// The store and plural rules are fixed after New. The current locale, the
// fallback locale and the extras store are guarded by a mutex, so a Catalog
// is safe for concurrent use.
package i18n
