package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		expected string
	}{
		{
			name:     "SimplePhrase",
			phrase:   "machine learning",
			expected: "machine-learning",
		},
		{
			name:     "MixedCase",
			phrase:   "Machine Learning",
			expected: "machine-learning",
		},
		{
			name:     "Punctuation",
			phrase:   "Go (language)",
			expected: "go-language",
		},
		{
			name:     "SurroundingWhitespace",
			phrase:   "  web dev  ",
			expected: "web-dev",
		},
		{
			name:     "MultipleSeparators",
			phrase:   "a -- b__c",
			expected: "a-b-c",
		},
		{
			name:     "SingleWord",
			phrase:   "golang",
			expected: "golang",
		},
		{
			name:     "Digits",
			phrase:   "http 2 protocol",
			expected: "http-2-protocol",
		},
		{
			name:     "OnlyPunctuation",
			phrase:   "!!!",
			expected: "",
		},
		{
			name:     "Empty",
			phrase:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.phrase))
		})
	}
}
