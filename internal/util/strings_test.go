package util

import "testing"

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{1, "00:01"},
		{59, "00:59"},
		{60, "01:00"},
		{61, "01:01"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "60:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.expected {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "hold", 10, "hold"},
		{"exact length unchanged", "breathe", 7, "breathe"},
		{"long string truncated", "breathe in slowly", 10, "breathe..."},
		{"tiny max", "breathe", 3, "..."},
		{"unicode runes", "呼吸呼吸呼吸", 5, "呼吸..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI_PlainText(t *testing.T) {
	if got := TruncateANSI("breathe out", 20); got != "breathe out" {
		t.Errorf("Short strings should pass through, got %q", got)
	}
	if got := TruncateANSI("breathe out and rest", 10); len(got) == 0 {
		t.Error("Truncated string should not be empty")
	}
}
