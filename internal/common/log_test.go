package common

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"5 microseconds", 5 * time.Microsecond, "5.00 us"},
		{"9.5 microseconds", 9500 * time.Nanosecond, "9.50 us"},

		{"0.01 ms", 10 * time.Microsecond, "0.01 ms"},
		{"0.5 ms", 500 * time.Microsecond, "0.50 ms"},

		{"1.234 ms", 1234 * time.Microsecond, "1.23 ms"},
		{"99.9 ms", 99900 * time.Microsecond, "99.90 ms"},
		{"999 ms", 999 * time.Millisecond, "999.00 ms"},

		{"1.234 s", 1234 * time.Millisecond, "1.23 s"},
		{"123.4 s", 123400 * time.Millisecond, "123.40 s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, formatDuration(tt.duration), "duration %v", tt.duration)
		})
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Logf("len=%d\n", 3)
	require.Equal(t, "len=3\n", buf.String())

	l.Enabled = false
	l.Logf("dropped\n")
	require.Equal(t, "len=3\n", buf.String())

	// A nil logger is silent.
	var nilLogger *Logger
	require.NotPanics(t, func() { nilLogger.Logf("x") })
}

func TestLogElapsed(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.logElapsed(1234*time.Microsecond, "union %s", "c")
	require.Equal(t, "(1.23 ms) union c\n", buf.String())
}
