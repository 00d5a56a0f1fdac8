package utils

import (
	"testing"
)

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "with spaces",
			input:    "AB12 CDE",
			expected: "AB12CDE",
		},
		{
			name:     "lowercase",
			input:    "ab12cde",
			expected: "AB12CDE",
		},
		{
			name:     "with dashes",
			input:    "AB-12-CDE",
			expected: "AB12CDE",
		},
		{
			name:     "mixed case with spaces and dashes",
			input:    "ab 12-cde",
			expected: "AB12CDE",
		},
		{
			name:     "interleaved dashes and spaces",
			input:    "A-B 1-2",
			expected: "AB12",
		},
		{
			name:     "already normalized",
			input:    "AB12CDE",
			expected: "AB12CDE",
		},
		{
			name:     "with leading/trailing spaces",
			input:    "  AB12 CDE  ",
			expected: "AB12CDE",
		},
		{
			name:     "tabs and newlines",
			input:    "AB\t12\nCDE",
			expected: "AB12CDE",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizePlate(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizePlate(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizePlateIdempotent(t *testing.T) {
	inputs := []string{"ab 12-cde", "AB12CDE", "A-B 1-2"}
	for _, input := range inputs {
		once := NormalizePlate(input)
		twice := NormalizePlate(once)
		if once != twice {
			t.Errorf("NormalizePlate not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
