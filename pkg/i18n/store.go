package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Store maps a locale code to its nested translation tree.
// Leaves are string templates or plural-form maps keyed by category name.
//
//	i18n.Store{
//		"en": map[string]any{
//			"js": map[string]any{
//				"topic": map[string]any{
//					"replies": map[string]any{"one": "1 reply", "other": "%{count} replies"},
//				},
//			},
//		},
//	}
type Store map[string]any

// Source loads a translation store from an external location.
type Source interface {
	Load(ctx context.Context) (Store, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) (Store, error)

// Load implements Source.
func (f SourceFunc) Load(ctx context.Context) (Store, error) {
	return f(ctx)
}

// Locales returns the sorted list of locales present in the store.
func (s Store) Locales() []string {
	return slices.Sorted(maps.Keys(s))
}

// Merge deep-merges src into s. Values from src win on conflicts;
// nested maps are merged key by key.
func (s Store) Merge(src Store) {
	for locale, tree := range src {
		tree = normalizeNode(tree)
		existing, ok := s[locale].(map[string]any)
		incoming, isMap := tree.(map[string]any)
		if !ok || !isMap {
			s[locale] = tree
			continue
		}
		mergeNodes(existing, incoming)
	}
}

// DecodeJSON decodes a store fragment whose top-level keys are locales.
func DecodeJSON(data []byte) (Store, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return storeFromRaw(raw)
}

// DecodeYAML decodes a store fragment whose top-level keys are locales.
func DecodeYAML(data []byte) (Store, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return storeFromRaw(raw)
}

func storeFromRaw(raw map[string]any) (Store, error) {
	store := make(Store, len(raw))
	for locale, tree := range raw {
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale key", ErrInvalidFile)
		}
		node := normalizeNode(tree)
		if _, ok := node.(map[string]any); !ok {
			return nil, fmt.Errorf("%w: locale %q: expected map, got %T", ErrInvalidFile, locale, tree)
		}
		store[locale] = node
	}
	return store, nil
}

// normalizeNode converts decoder-specific map shapes into map[string]any.
// YAML decodes maps with non-string keys (e.g. literal counts) as map[any]any.
func normalizeNode(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, child := range node {
			out[key] = normalizeNode(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(node))
		for key, child := range node {
			out[fmt.Sprint(key)] = normalizeNode(child)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(node))
		for key, s := range node {
			out[key] = s
		}
		return out
	case Store:
		return normalizeNode(map[string]any(node))
	default:
		return v
	}
}

func mergeNodes(dst, src map[string]any) {
	for key, value := range src {
		existing, ok := dst[key].(map[string]any)
		incoming, isMap := value.(map[string]any)
		if ok && isMap {
			mergeNodes(existing, incoming)
			continue
		}
		dst[key] = value
	}
}

// walk descends one path segment at a time. Any missing segment, or a
// non-map node met before the path is exhausted, yields "not found".
func walk(node any, path []string) (any, bool) {
	current := node
	for _, segment := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, current != nil
}
