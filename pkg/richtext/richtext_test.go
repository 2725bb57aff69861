package richtext

import (
	"strings"
	"testing"
)

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"line one\r\nline two", "line one<br>line two"},
		{"a\r\n\r\nb", "a<br><br>b"},
		{"unix\nstays", "unix\nstays"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeNewlines(tt.input); got != tt.expected {
			t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "Hello there", "Hello there"},
		{"br tags", "Hello<br>there<br/>friend", "Hello\nthere\nfriend"},
		{"entities", "Fish &amp; chips", "Fish & chips"},
		{"paragraphs", "<p>First</p><p>Second</p>", "First\nSecond"},
		{"blank runs collapse", "a<br><br><br><br>b", "a\n\nb"},
		{"inline markup", "<strong>Bold</strong> claim", "Bold claim"},
		{"scripts dropped", "safe<script>alert(1)</script>", "safe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.input); got != tt.expected {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	out := Sanitize(`Hi<br><script>alert(1)</script><a href="javascript:x()">x</a>`)
	if strings.Contains(out, "<script") {
		t.Errorf("script survived sanitizing: %q", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Errorf("javascript URL survived sanitizing: %q", out)
	}
	if !strings.Contains(out, "<br") {
		t.Errorf("line breaks should survive sanitizing: %q", out)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("First line<br>Second line", 40); got != "First line" {
		t.Errorf("Excerpt() = %q, want first line only", got)
	}
	if got := Excerpt("abcdefghijklmnop", 10); got != "abcdefg..." {
		t.Errorf("Excerpt() = %q, want truncated", got)
	}
}
