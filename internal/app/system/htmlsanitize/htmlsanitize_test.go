package htmlsanitize_test

import (
	"testing"

	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	result := htmlsanitize.Sanitize("")
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	result := htmlsanitize.Sanitize("Hello, World!")
	if result != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	result := htmlsanitize.Sanitize(input)
	if result != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestPlainText_StripsAllTags(t *testing.T) {
	input := "<p><strong>Bold</strong> summary</p>"
	result := htmlsanitize.PlainText(input)
	if result != "Bold summary" {
		t.Errorf("expected all tags stripped, got %q", result)
	}
}

func TestPlainText_RemovesScript(t *testing.T) {
	input := "notes<script>alert('xss')</script>"
	result := htmlsanitize.PlainText(input)
	if result != "notes" {
		t.Errorf("expected script stripped, got %q", result)
	}
}
