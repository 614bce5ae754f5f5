package utils

import (
	"testing"
)

func TestTrimTrailingNewline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"NoNewline", "value", "value"},
		{"OneNewline", "value\n", "value"},
		{"CRLF", "value\r\n", "value"},
		{"OnlyOneTrimmed", "value\n\n", "value\n"},
		{"KeepsSpaces", "  value  \n", "  value  "},
		{"Empty", "", ""},
		{"OnlyNewline", "\n", ""},
		{"InnerNewline", "line1\nline2\n", "line1\nline2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TrimTrailingNewline(tc.input); got != tc.expected {
				t.Errorf("TrimTrailingNewline(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
