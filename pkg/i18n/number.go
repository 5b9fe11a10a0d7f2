package i18n

import (
	"math"
	"strconv"
	"strings"
)

// NumberFormat holds the settings used by the number helpers.
// Settings resolve from built-in defaults, then the locale's
// "number.*.format" entries in the store, then caller options.
type NumberFormat struct {
	Precision               int
	Separator               string
	Delimiter               string
	StripInsignificantZeros bool
	Unit                    string
	Format                  string
}

// NumberOption overrides a single number setting.
type NumberOption func(*NumberFormat)

// WithPrecision sets the number of fractional digits.
func WithPrecision(precision int) NumberOption {
	return func(f *NumberFormat) {
		f.Precision = max(precision, 0)
	}
}

// WithSeparator sets the decimal separator.
func WithSeparator(sep string) NumberOption {
	return func(f *NumberFormat) {
		f.Separator = sep
	}
}

// WithDelimiter sets the thousands delimiter.
func WithDelimiter(delimiter string) NumberOption {
	return func(f *NumberFormat) {
		f.Delimiter = delimiter
	}
}

// WithStripInsignificantZeros trims trailing fractional zeros.
func WithStripInsignificantZeros(strip bool) NumberOption {
	return func(f *NumberFormat) {
		f.StripInsignificantZeros = strip
	}
}

// WithUnit sets the unit used by ToCurrency and ToHumanSize.
func WithUnit(unit string) NumberOption {
	return func(f *NumberFormat) {
		f.Unit = unit
	}
}

// WithFormat sets the layout, where %n is the number and %u the unit.
func WithFormat(format string) NumberOption {
	return func(f *NumberFormat) {
		f.Format = format
	}
}

func numberDefaults() NumberFormat {
	return NumberFormat{Precision: 3, Separator: ".", Delimiter: ","}
}

func currencyDefaults() NumberFormat {
	return NumberFormat{Precision: 2, Separator: ".", Delimiter: ",", Unit: "$", Format: "%u%n"}
}

func percentageDefaults() NumberFormat {
	return NumberFormat{Precision: 3, Separator: ".", Delimiter: ""}
}

// Default English storage units used when the store has none.
var (
	byteUnits   = map[string]any{PluralOne: "Byte", PluralOther: "Bytes"}
	storageUnit = []string{"", "KB", "MB", "GB", "TB"}
	storageKeys = []string{"byte", "kb", "mb", "gb", "tb"}
)

// ToNumber formats n using the locale's "number.format" settings.
func (c *Catalog) ToNumber(locale string, n float64, opts ...NumberOption) string {
	f := c.numberFormat(locale, numberDefaults(), "number.format")
	for _, opt := range opts {
		opt(&f)
	}
	return formatNumber(n, f)
}

// ToCurrency formats n as money using "number.currency.format".
func (c *Catalog) ToCurrency(locale string, n float64, opts ...NumberOption) string {
	f := c.numberFormat(locale, currencyDefaults(), "number.format", "number.currency.format")
	for _, opt := range opts {
		opt(&f)
	}
	return applyFormat(f.Format, formatNumber(n, f), f.Unit)
}

// ToPercentage formats n followed by a percent sign using "number.percentage.format".
// The value is not scaled: 12.5 renders as "12.500%".
func (c *Catalog) ToPercentage(locale string, n float64, opts ...NumberOption) string {
	f := c.numberFormat(locale, percentageDefaults(), "number.format", "number.percentage.format")
	for _, opt := range opts {
		opt(&f)
	}
	return formatNumber(n, f) + "%"
}

// ToHumanSize formats a byte count with 1024-based units up to terabytes,
// e.g. "1.5KB". Unit names come from "number.human.storage_units.units.<unit>"
// and the byte unit is pluralised. The layout defaults to "%n%u" and can be
// set per locale with "number.human.storage_units.format".
func (c *Catalog) ToHumanSize(locale string, bytes float64, opts ...NumberOption) string {
	const kb = 1024

	size := bytes
	iterations := 0
	for size >= kb && iterations < 4 {
		size /= kb
		iterations++
	}

	scope := "number.human.storage_units.units." + storageKeys[iterations]
	var unit string
	precision := 0
	if iterations == 0 {
		unit = c.Translate(scope, Options{Locale: locale, Count: Count(int(size)), DefaultValue: byteUnits})
	} else {
		unit = c.Translate(scope, Options{Locale: locale, DefaultValue: storageUnit[iterations]})
		if size != math.Floor(size) {
			precision = 1
		}
	}

	f := c.numberFormat(locale, numberDefaults(), "number.format")
	f.Precision = precision
	f.Format = "%n%u"
	if layout, ok := c.Lookup("number.human.storage_units.format", Options{Locale: locale}); ok {
		if s, ok := layout.(string); ok {
			f.Format = s
		}
	}
	f.Delimiter = ""
	for _, opt := range opts {
		opt(&f)
	}
	return applyFormat(f.Format, formatNumber(size, f), unit)
}

// numberFormat layers store settings found under scopes over base.
func (c *Catalog) numberFormat(locale string, base NumberFormat, scopes ...string) NumberFormat {
	for _, scope := range scopes {
		node, ok := c.Lookup(scope, Options{Locale: locale})
		if !ok {
			continue
		}
		settings, ok := node.(map[string]any)
		if !ok {
			continue
		}
		applySettings(&base, settings)
	}
	return base
}

func applySettings(f *NumberFormat, settings map[string]any) {
	if v, ok := settings["precision"]; ok {
		if p, ok := toInt(v); ok {
			f.Precision = max(p, 0)
		}
	}
	if v, ok := settings["separator"].(string); ok {
		f.Separator = v
	}
	if v, ok := settings["delimiter"].(string); ok {
		f.Delimiter = v
	}
	if v, ok := settings["strip_insignificant_zeros"].(bool); ok {
		f.StripInsignificantZeros = v
	}
	if v, ok := settings["unit"].(string); ok {
		f.Unit = v
	}
	if v, ok := settings["format"].(string); ok {
		f.Format = v
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}

func formatNumber(n float64, f NumberFormat) string {
	negative := n < 0
	fixed := strconv.FormatFloat(math.Abs(n), 'f', f.Precision, 64)

	intPart, fraction, _ := strings.Cut(fixed, ".")
	result := groupDigits(intPart, f.Delimiter)
	if f.Precision > 0 {
		if f.StripInsignificantZeros {
			fraction = strings.TrimRight(fraction, "0")
		}
		if fraction != "" {
			result += f.Separator + fraction
		}
	}

	if negative && strings.Trim(result, "0"+f.Separator+f.Delimiter) != "" {
		result = "-" + result
	}
	return result
}

func groupDigits(digits, delimiter string) string {
	if len(digits) <= 3 || delimiter == "" {
		return digits
	}

	groups := make([]string, 0, len(digits)/3+1)
	for i := len(digits); i > 0; i -= 3 {
		start := max(0, i-3)
		groups = append([]string{digits[start:i]}, groups...)
	}
	return strings.Join(groups, delimiter)
}

func applyFormat(format, number, unit string) string {
	return strings.NewReplacer("%u", unit, "%n", number).Replace(format)
}
