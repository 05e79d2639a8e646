package common

import (
	"fmt"
	"io"
	"time"
)

// Logger writes formatted messages to an output when enabled.
type Logger struct {
	Enabled bool
	out     io.Writer
}

// NewLogger returns an enabled logger writing to out.
func NewLogger(out io.Writer) *Logger {
	return &Logger{Enabled: true, out: out}
}

// Logf prints a formatted message if logging is enabled.
func (l *Logger) Logf(format string, args ...interface{}) {
	if l == nil || !l.Enabled {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// formatDuration formats a duration with 2 decimal places,
// e.g. "1.23 ms".
func formatDuration(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)

	if ms >= 1000 {
		return fmt.Sprintf("%.2f s", ms/1000)
	} else if ms < 0.01 {
		return fmt.Sprintf("%.2f us", ms*1000)
	}
	return fmt.Sprintf("%.2f ms", ms)
}

// LogDuration prints a message prefixed with the elapsed time since start.
// The duration column is right-padded so messages line up.
func (l *Logger) LogDuration(start time.Time, format string, args ...interface{}) {
	l.logElapsed(time.Since(start), format, args...)
}

func (l *Logger) logElapsed(elapsed time.Duration, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	durStr := fmt.Sprintf("(%s)", formatDuration(elapsed))
	l.Logf("%-10s%s\n", durStr, msg)
}
