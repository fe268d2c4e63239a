package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCompanyNameSoft(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"company name is", "My brand is Acme Inc, we are launching", "Acme Inc"},
		{"short fallback", "Breadbox", "Breadbox"},
		{"empty", "", ""},
		{"whitespace only", "   \n  ", ""},
		{"company is phrasing", "our company is Typo and we make keyboards", "Typo and we make keyboards"},
		{"brand is", "my brand is Northwind", "Northwind"},
		{"typo tolerant", "my comonay name is Breadbox, founded 2019", "Breadbox"},
		{"we are", "we are Glasswing, a drone startup", "Glasswing"},
		{"cut at its", "My company is Lumon its a biotech firm", "Lumon"},
		{"three word fallback", "Bright Morning Co", "Bright Morning Co"},
		{"long sentence no match", "here is a long rambling description of what the product should feel like overall", ""},
		{"quoted name", `my brand is "Haze"`, "Haze"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractCompanyNameSoft(tc.input))
		})
	}
}

// every non-empty result is trimmed, single-line, whitespace-collapsed and
// at most 60 characters
func TestExtractCompanyNameSoftShape(t *testing.T) {
	inputs := []string{
		"My brand is Acme Inc, we are launching",
		"my  company   name is   Spaced    Out",
		"Breadbox",
		"we are Glasswing",
		"one two three",
		strings.Repeat("x", 100),
		"name\nwith\nnewlines",
		"my brand is " + strings.Repeat("A", 80),
	}

	for _, in := range inputs {
		got := ExtractCompanyNameSoft(in)
		if got == "" {
			continue
		}
		assert.Equal(t, strings.TrimSpace(got), got, "input %q", in)
		assert.NotContains(t, got, "\n", "input %q", in)
		assert.NotContains(t, got, "\r", "input %q", in)
		assert.NotContains(t, got, "  ", "input %q", in)
		assert.LessOrEqual(t, len(got), 60, "input %q", in)
	}
}
