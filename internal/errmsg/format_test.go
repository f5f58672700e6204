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
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load configuration: file not found",
		},
		{
			name:     "state operation",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open settings database: permission denied",
		},
		{
			name:     "notify operation",
			op:       OpNotifySend,
			err:      errors.New("no session bus"),
			expected: "Failed to send desktop notification: no session bus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
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
			op:       OpFeedbackPlay,
			context:  "pop.wav",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpFeedbackPlay,
			context:  "pop.wav",
			err:      errors.New("unsupported format"),
			expected: "Failed to play feedback sound 'pop.wav': unsupported format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpFeedbackPlay,
			context:  "",
			err:      errors.New("unsupported format"),
			expected: "Failed to play feedback sound: unsupported format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpConfigLoad,
		OpStateOpen, OpSettingsSave, OpHistoryLoad, OpHistorySave,
		OpNotifySend, OpFeedbackPlay,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
