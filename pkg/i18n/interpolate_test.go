package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		vars     i18n.M
		expected string
	}{
		{
			name:     "no placeholders returns template unchanged",
			template: "Plain text",
			vars:     i18n.M{"name": "Ana"},
			expected: "Plain text",
		},
		{
			name:     "double brace placeholder",
			template: "Hello, {{name}}!",
			vars:     i18n.M{"name": "Ana"},
			expected: "Hello, Ana!",
		},
		{
			name:     "percent placeholder",
			template: "%{count} replies",
			vars:     i18n.M{"count": 3},
			expected: "3 replies",
		},
		{
			name:     "percent placeholder with doubled closing brace",
			template: "%{count}} replies",
			vars:     i18n.M{"count": 3},
			expected: "3 replies",
		},
		{
			name:     "double brace with single closing brace",
			template: "Hi {{name}!",
			vars:     i18n.M{"name": "Bob"},
			expected: "Hi Bob!",
		},
		{
			name:     "repeated placeholder",
			template: "{{a}} and {{a}}",
			vars:     i18n.M{"a": "x"},
			expected: "x and x",
		},
		{
			name:     "dollar signs are literal",
			template: "Price: %{price}",
			vars:     i18n.M{"price": "$1 $$ ${0}"},
			expected: "Price: $1 $$ ${0}",
		},
		{
			name:     "missing value is visible",
			template: "Hello, %{name}!",
			vars:     i18n.M{},
			expected: "Hello, [missing %{name} value]!",
		},
		{
			name:     "nil value is missing",
			template: "Hello, {{name}}!",
			vars:     i18n.M{"name": nil},
			expected: "Hello, [missing {{name}} value]!",
		},
		{
			name:     "nil vars",
			template: "{{a}}",
			expected: "[missing {{a}} value]",
		},
		{
			name:     "float value",
			template: "{{n}}",
			vars:     i18n.M{"n": 1.5},
			expected: "1.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.Interpolate(tt.template, tt.vars))
		})
	}
}
