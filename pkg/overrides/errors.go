package overrides

import "errors"

var (
	ErrEmptyLocale = errors.New("overrides: empty locale")
	ErrInvalidKey  = errors.New("overrides: invalid translation key")
	ErrNotFound    = errors.New("overrides: override not found")
	ErrLoad        = errors.New("overrides: failed to load overrides")
	ErrSave        = errors.New("overrides: failed to save override")
	ErrDelete      = errors.New("overrides: failed to delete override")
)
