package postprocess

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "clean text",
			input:    "Das Schwert ist zerbrochen.",
			expected: "Das Schwert ist zerbrochen.",
		},
		{
			name:     "thinking block",
			input:    "<think>The user wants German.</think>Hallo",
			expected: "Hallo",
		},
		{
			name:     "truncated reasoning",
			input:    "Hallo<reasoning>Checking the grammar",
			expected: "Hallo",
		},
		{
			name:     "echoed label with quotes",
			input:    "Here is the translation: \"Angriff!\"",
			expected: "Angriff!",
		},
		{
			name:     "courtesy prefix and label",
			input:    "Sure, here's the translation:\n«Bis morgen»",
			expected: "Bis morgen",
		},
		{
			name:     "german label",
			input:    "Übersetzung: Guten Tag",
			expected: "Guten Tag",
		},
		{
			name:     "dialog starting with sure is kept",
			input:    "Sure enough, the gate was open.",
			expected: "Sure enough, the gate was open.",
		},
		{
			name:     "german low-high quotes",
			input:    "„Vorwärts“",
			expected: "Vorwärts",
		},
		{
			name:     "single quote char is kept",
			input:    "\"",
			expected: "\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clean(tt.input)
			if result != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no breaks", "Guten  Morgen", "Guten  Morgen"},
		{"lf", "Guten\nMorgen", "Guten Morgen"},
		{"crlf and blank lines", "Guten\r\n\r\n  Morgen \r\n", "Guten Morgen"},
		{"only breaks", "\n\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SingleLine(tt.input)
			if result != tt.expected {
				t.Errorf("SingleLine(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
