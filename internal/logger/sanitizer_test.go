package logger

import (
	"errors"
	"testing"

	"github.com/Ning0612/fspreview/internal/domain"
)

func TestSanitizer_Sanitize(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "password",
			input:    "login with password=secret123",
			expected: "login with password=***",
		},
		{
			name:     "bearer token",
			input:    "Authorization: Bearer eyJhbGc...",
			expected: "Authorization: bearer ***",
		},
		{
			name:     "windows user path",
			input:    "file at C:\\Users\\john\\Documents\\file.txt",
			expected: "file at ***:\\Users\\***\\Documents\\file.txt",
		},
		{
			name:     "unix home path",
			input:    "config in /home/john/.config/fspreview",
			expected: "config in /home/***/.config/fspreview",
		},
		{
			name:     "private folder members",
			input:    "stat /keybase/private/alice,bob/foo/bar.img",
			expected: "stat /keybase/private/***/foo/bar.img",
		},
		{
			name:     "public folder untouched",
			input:    "stat /keybase/public/alice/readme.md",
			expected: "stat /keybase/public/alice/readme.md",
		},
		{
			name:     "email partial mask",
			input:    "user email: john.doe@example.com",
			expected: "user email: joh***@example.com",
		},
		{
			name:     "no sensitive data",
			input:    "normal log message",
			expected: "normal log message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Sanitize(tt.input)
			if result != tt.expected {
				t.Errorf("Sanitize() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSanitizer_SanitizeArgs(t *testing.T) {
	s := NewSanitizer()

	args := []any{
		"last_writer", "foobar",
		"path", "/keybase/private/foobar/x.txt",
		"kind", domain.PathKindFolder,
		"size", int64(15000),
		"error", errors.New("open /home/john/x: denied"),
		"dangling",
	}
	result := s.SanitizeArgs(args)

	if len(result) != len(args) {
		t.Fatalf("SanitizeArgs() changed length: %d", len(result))
	}
	if result[1] != "f***" {
		t.Errorf("writer value = %v, want f***", result[1])
	}
	if result[3] != "/keybase/private/***/x.txt" {
		t.Errorf("path value = %v", result[3])
	}
	if result[5] != "folder" {
		t.Errorf("stringer value = %v, want folder", result[5])
	}
	if result[7] != int64(15000) {
		t.Errorf("numeric value should be untouched, got %v", result[7])
	}
	if result[9] != "open /home/***/x: denied" {
		t.Errorf("error value = %v", result[9])
	}
	if args[1] != "foobar" {
		t.Error("SanitizeArgs() must not modify its input")
	}
}

func TestSanitizer_AddRule(t *testing.T) {
	s := NewSanitizer()

	if err := s.AddRule(`SSN=\d{3}-\d{2}-\d{4}`, "SSN=***"); err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}

	input := "User SSN=123-45-6789 registered"
	expected := "User SSN=*** registered"
	if result := s.Sanitize(input); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}

	if err := s.AddRule(`(`, "x"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ab", "***"},
		{"abc", "a***"},
		{"abcdefgh", "a***"},
		{"abcdefghi", "a***i"},
		{"verylongpassword", "v***d"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := maskValue(tt.input); result != tt.expected {
				t.Errorf("maskValue(%s) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"password", true},
		{"PASSWORD", true},
		{"api_key", true},
		{"last_writer", true},
		{"owner", true},
		{"username", false},
		{"path", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := isSensitiveKey(tt.input); result != tt.expected {
				t.Errorf("isSensitiveKey(%s) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
