package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage negotiates the best locale from available for an
// Accept-Language header. Quality values are honoured and regional variants
// match their base language ("en-US" matches "en"). An empty, oversized or
// unparsable header, or one with no acceptable match, yields available[0].
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" || len(header) > maxAcceptLanguageLength {
		return available[0]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	tags := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for i, locale := range available {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		index = append(index, i)
	}
	if len(tags) == 0 {
		return available[0]
	}

	_, i, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return available[0]
	}
	return available[index[i]]
}
