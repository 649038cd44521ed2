package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_Quotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"“Bonjour”", `"Bonjour"`},
		{"„Bas‟", `"Bas"`},
		{"L’omelette", "L'omelette"},
		{"‘a’ ‚b‛", "'a' 'b'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "input %q", tt.in)
	}
}

func TestSanitize_Newlines(t *testing.T) {
	assert.Equal(t, "ligne 1  ligne 2 fin", Sanitize("ligne 1\r\nligne 2\nfin"))
	assert.NotContains(t, Sanitize("a\rb\nc"), "\n")
	assert.NotContains(t, Sanitize("a\rb\nc"), "\r")
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"déjà propre",
		"“mix”\r\n’‘‚‛„‟",
		strings.Repeat("’\n", 20),
		"emoji 🍝 et accents éàü",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}
