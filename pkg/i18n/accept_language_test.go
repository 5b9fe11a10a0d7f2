package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
	}{
		{
			name:      "empty header returns first available",
			header:    "",
			available: []string{"en", "sl", "de"},
			expected:  "en",
		},
		{
			name:      "empty available returns empty",
			header:    "en-US,en;q=0.9",
			available: []string{},
			expected:  "",
		},
		{
			name:      "exact match",
			header:    "sl",
			available: []string{"en", "sl", "de"},
			expected:  "sl",
		},
		{
			name:      "match with quality values",
			header:    "de;q=0.5,sl;q=0.9,en;q=0.8",
			available: []string{"en", "sl", "de"},
			expected:  "sl",
		},
		{
			name:      "language with region matches base",
			header:    "en-US",
			available: []string{"en", "sl", "de"},
			expected:  "en",
		},
		{
			name:      "no match returns first available",
			header:    "ja",
			available: []string{"en", "sl", "de"},
			expected:  "en",
		},
		{
			name:      "complex header with multiple regions",
			header:    "en-GB,en-US;q=0.9,en;q=0.8,sl-SI;q=0.7,sl;q=0.6",
			available: []string{"sl", "en"},
			expected:  "en",
		},
		{
			name:      "case insensitive matching",
			header:    "SL-si,EN;q=0.9",
			available: []string{"en", "sl"},
			expected:  "sl",
		},
		{
			name:      "malformed header returns first available",
			header:    "en;q=invalid,sl;q=0.5",
			available: []string{"de", "sl"},
			expected:  "de",
		},
		{
			name:      "oversized header returns first available",
			header:    strings.Repeat("sl,", 2000) + "de",
			available: []string{"en", "sl", "de"},
			expected:  "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := i18n.ParseAcceptLanguage(tt.header, tt.available)
			require.Equal(t, tt.expected, result)
		})
	}
}
