package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLocale       = errors.New("i18n: locale cannot be empty")
	ErrNilPluralRule     = errors.New("i18n: plural rule cannot be nil")
	ErrNilSource         = errors.New("i18n: translation source cannot be nil")
	ErrInvalidFile       = errors.New("i18n: invalid translation file")
	ErrMissingPluralRule = errors.New("i18n: no plural rule registered for locale")
	ErrNotTemplate       = errors.New("i18n: translation is not a string template")
)

// LocaleNotSupportedError indicates that the catalog holds no translations for a locale.
type LocaleNotSupportedError struct {
	Locale string
}

func (e *LocaleNotSupportedError) Error() string {
	return fmt.Sprintf("i18n: locale not supported: %s", e.Locale)
}
