package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// WithJSONDir loads every *.json file found in fsys. Each file is a store
// fragment whose top-level keys are locales; fragments are deep-merged in
// lexical path order.
//
// Example structure:
//
//	client.en.json  -> {"en": {"js": {...}}}
//	client.sl.json  -> {"sl": {"js": {...}}}
//	admin/all.json  -> {"en": {"admin_js": {...}}, "sl": {...}}
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return walkDir(fsys, c.store, DecodeJSON, ".json")
	}
}

// WithYAMLDir loads every *.yaml and *.yml file found in fsys, following
// the same layout as WithJSONDir.
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return walkDir(fsys, c.store, DecodeYAML, ".yaml", ".yml")
	}
}

// DirSource returns a Source that loads JSON and YAML fragments from fsys.
func DirSource(fsys fs.FS) Source {
	return SourceFunc(func(_ context.Context) (Store, error) {
		store := make(Store)
		if err := walkDir(fsys, store, DecodeJSON, ".json"); err != nil {
			return nil, err
		}
		if err := walkDir(fsys, store, DecodeYAML, ".yaml", ".yml"); err != nil {
			return nil, err
		}
		return store, nil
	})
}

func walkDir(fsys fs.FS, dst Store, decode func([]byte) (Store, error), exts ...string) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// Case-insensitive so .YAML and .yaml both match
		fileExt := strings.ToLower(path.Ext(filePath))
		if !slices.Contains(exts, fileExt) {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		store, err := decode(data)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", filePath, err)
		}
		dst.Merge(store)
		return nil
	})
}
