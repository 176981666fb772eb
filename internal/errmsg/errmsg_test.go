package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTagsSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpTagsSave,
			err:      errors.New("permission denied"),
			expected: "Failed to save edited tags: permission denied",
		},
		{
			name:     "scan operation",
			op:       OpFileScan,
			err:      errors.New("no such directory"),
			expected: "Failed to scan music files: no such directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCoverAttach,
			context:  "track.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpCoverAttach,
			context:  "track.mp3",
			err:      errors.New("no picture support"),
			expected: "Failed to attach cover art 'track.mp3': no picture support",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpTagsSave,
			context:  "",
			err:      errors.New("disk full"),
			expected: "Failed to save edited tags: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
