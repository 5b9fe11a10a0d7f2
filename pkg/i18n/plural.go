package i18n

import (
	"slices"
	"strings"
)

// Plural category names as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// Categories is the result of a plural rule: either a single category
// or an ordered list of categories tried in turn.
type Categories struct {
	names []string
	list  bool
}

// Category returns a single-category result.
func Category(name string) Categories {
	return Categories{names: []string{name}}
}

// CategoryList returns an ordered list of fallback categories.
func CategoryList(names ...string) Categories {
	return Categories{names: slices.Clone(names), list: true}
}

// Names returns the candidate categories in lookup order.
func (c Categories) Names() []string {
	return slices.Clone(c.names)
}

// IsList reports whether the rule returned a fallback list.
func (c Categories) IsList() bool {
	return c.list
}

// First returns the preferred category, used when reporting a missing plural form.
func (c Categories) First() string {
	if len(c.names) == 0 {
		return PluralOther
	}
	return c.names[0]
}

// PluralRule maps a non-negative count to its plural categories.
type PluralRule func(n int) Categories

// EnglishPluralRule is the default rule. Zero prefers a dedicated "zero"
// form and falls back to "other".
var EnglishPluralRule PluralRule = func(n int) Categories {
	switch n {
	case 0:
		return CategoryList(PluralZero, PluralOther)
	case 1:
		return Category(PluralOne)
	default:
		return Category(PluralOther)
	}
}

// DefaultPluralRule is used for locales without a registered rule.
var DefaultPluralRule = EnglishPluralRule

// GermanicPluralRule: German, Dutch, Swedish, Norwegian, Danish, Icelandic.
var GermanicPluralRule PluralRule = func(n int) Categories {
	if n == 1 {
		return Category(PluralOne)
	}
	return Category(PluralOther)
}

// RomancePluralRule: French, Italian, Portuguese. 0 and 1 are singular.
var RomancePluralRule PluralRule = func(n int) Categories {
	if n == 0 || n == 1 {
		return Category(PluralOne)
	}
	if n >= 1000000 && n%1000000 == 0 {
		return CategoryList(PluralMany, PluralOther)
	}
	return Category(PluralOther)
}

// SpanishPluralRule: like the Romance rule, but 0 is plural.
var SpanishPluralRule PluralRule = func(n int) Categories {
	if n == 1 {
		return Category(PluralOne)
	}
	if n >= 1000000 && n%1000000 == 0 {
		return CategoryList(PluralMany, PluralOther)
	}
	return Category(PluralOther)
}

// RussianPluralRule: Russian, Ukrainian, Belarusian, Serbian, Croatian, Bosnian.
var RussianPluralRule PluralRule = func(n int) Categories {
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return Category(PluralOne)
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return CategoryList(PluralFew, PluralOther)
	default:
		return CategoryList(PluralMany, PluralOther)
	}
}

// PolishPluralRule: only exactly 1 is singular.
var PolishPluralRule PluralRule = func(n int) Categories {
	mod10, mod100 := n%10, n%100
	switch {
	case n == 1:
		return Category(PluralOne)
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return CategoryList(PluralFew, PluralOther)
	default:
		return CategoryList(PluralMany, PluralOther)
	}
}

// CzechPluralRule: Czech and Slovak.
var CzechPluralRule PluralRule = func(n int) Categories {
	switch {
	case n == 1:
		return Category(PluralOne)
	case n >= 2 && n <= 4:
		return CategoryList(PluralFew, PluralOther)
	default:
		return Category(PluralOther)
	}
}

// SlovenianPluralRule uses the dual: one for 1, 101, 201...; two for 2, 102...;
// few for 3-4, 103-104...; other otherwise.
var SlovenianPluralRule PluralRule = func(n int) Categories {
	switch n % 100 {
	case 1:
		return Category(PluralOne)
	case 2:
		return CategoryList(PluralTwo, PluralOther)
	case 3, 4:
		return CategoryList(PluralFew, PluralOther)
	default:
		return Category(PluralOther)
	}
}

// ArabicPluralRule distinguishes all six CLDR categories.
var ArabicPluralRule PluralRule = func(n int) Categories {
	mod100 := n % 100
	switch {
	case n == 0:
		return CategoryList(PluralZero, PluralOther)
	case n == 1:
		return Category(PluralOne)
	case n == 2:
		return CategoryList(PluralTwo, PluralOther)
	case mod100 >= 3 && mod100 <= 10:
		return CategoryList(PluralFew, PluralOther)
	case mod100 >= 11 && mod100 <= 99:
		return CategoryList(PluralMany, PluralOther)
	default:
		return Category(PluralOther)
	}
}

// AsianPluralRule: languages without grammatical number
// (Japanese, Chinese, Korean, Thai, Vietnamese, Indonesian, Malay).
var AsianPluralRule PluralRule = func(_ int) Categories {
	return Category(PluralOther)
}

// PluralRuleForLanguage returns the built-in rule for a locale's base language.
// The boolean is false when no built-in rule is known for it.
func PluralRuleForLanguage(locale string) (PluralRule, bool) {
	switch baseLanguage(strings.ToLower(locale)) {
	case "en", "fi", "et", "el", "hu", "tr", "bg", "ca", "eu", "gl":
		return EnglishPluralRule, true
	case "de", "nl", "sv", "no", "nb", "nn", "da", "is":
		return GermanicPluralRule, true
	case "fr", "it", "pt":
		return RomancePluralRule, true
	case "es":
		return SpanishPluralRule, true
	case "ru", "uk", "be", "sr", "hr", "bs":
		return RussianPluralRule, true
	case "pl":
		return PolishPluralRule, true
	case "cs", "sk":
		return CzechPluralRule, true
	case "sl":
		return SlovenianPluralRule, true
	case "ar":
		return ArabicPluralRule, true
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule, true
	default:
		return nil, false
	}
}

// SupportedPluralForms returns the categories a rule can produce, in CLDR order.
// Clients use it to know which forms a bundle is expected to carry.
func SupportedPluralForms(rule PluralRule) []string {
	if rule == nil {
		return nil
	}

	forms := make(map[string]bool)
	for _, n := range []int{0, 1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 20, 21, 22, 101, 102, 103, 111, 1000, 1000000} {
		for _, name := range rule(n).names {
			forms[name] = true
		}
	}

	var result []string
	for _, form := range []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther} {
		if forms[form] {
			result = append(result, form)
		}
	}
	return result
}

// baseLanguage strips the region from a locale ("sl-SI" -> "sl", "pt_BR" -> "pt").
func baseLanguage(locale string) string {
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return locale[:i]
	}
	return locale
}
