// Package logging provides the small leveled logger used across the
// toolchain. Lines render as
//
//	2006-01-02T15:04:05Z INFO dataset: files written count=5 dir=out
//
// with key/value pairs taken from the variadic tail of each call. The
// logger is safe for concurrent use; level and output can be swapped at
// runtime, which the command layer does when --verbose is set.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// timeFormat keeps lines lexically sortable and free of spaces.
const timeFormat = "2006-01-02T15:04:05Z07:00"

// Logger writes leveled, named log lines to a single output.
type Logger struct {
	name string

	mu    sync.Mutex
	level Level
	out   io.Writer
	now   func() time.Time
}

// New returns a logger named name writing to stderr at LevelInfo.
func New(name string) *Logger {
	return &Logger{
		name:  name,
		level: LevelInfo,
		out:   os.Stderr,
		now:   time.Now,
	}
}

// SetLevel sets the minimum level that will be written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput redirects the logger to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Debug logs at LevelDebug. kv is alternating keys and values.
func (l *Logger) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv) }

// Info logs at LevelInfo. kv is alternating keys and values.
func (l *Logger) Info(msg string, kv ...any) { l.log(LevelInfo, msg, kv) }

// Warn logs at LevelWarn. kv is alternating keys and values.
func (l *Logger) Warn(msg string, kv ...any) { l.log(LevelWarn, msg, kv) }

// Error logs at LevelError. kv is alternating keys and values.
func (l *Logger) Error(msg string, kv ...any) { l.log(LevelError, msg, kv) }

func (l *Logger) log(level Level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(l.now().UTC().Format(timeFormat))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(l.name)
	b.WriteString(": ")
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 != 0 {
		// A dangling key is a caller bug. Render it anyway so the
		// line is not silently lossy.
		fmt.Fprintf(&b, " %v=(missing)", kv[len(kv)-1])
	}
	b.WriteByte('\n')

	io.WriteString(l.out, b.String())
}
