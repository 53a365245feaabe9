package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// LegacyLogger writes "[LEVEL] msg key=value" lines without slog
type LegacyLogger struct {
	level Level
	mu    *sync.Mutex // shared with children
	out   io.Writer
	attrs []any
}

// NewLegacyLogger 建立 legacy logger
func NewLegacyLogger(level Level, out io.Writer) *LegacyLogger {
	return &LegacyLogger{level: level, out: out, mu: &sync.Mutex{}}
}

func (l *LegacyLogger) log(level Level, msg string, args []any) {
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strings.ToUpper(level.String()))
	b.WriteString("] ")
	b.WriteString(msg)
	writePairs(&b, l.attrs)
	writePairs(&b, args)
	b.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, b.String())
}

func writePairs(b *strings.Builder, args []any) {
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			fmt.Fprintf(b, " %v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(b, " %v", args[i])
		}
	}
}

func (l *LegacyLogger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args) }
func (l *LegacyLogger) Info(msg string, args ...any)  { l.log(LevelInfo, msg, args) }
func (l *LegacyLogger) Warn(msg string, args ...any)  { l.log(LevelWarn, msg, args) }
func (l *LegacyLogger) Error(msg string, args ...any) { l.log(LevelError, msg, args) }

// With returns a logger that prefixes args to every line
func (l *LegacyLogger) With(args ...any) Logger {
	attrs := make([]any, 0, len(l.attrs)+len(args))
	attrs = append(attrs, l.attrs...)
	attrs = append(attrs, args...)
	return &LegacyLogger{level: l.level, out: l.out, mu: l.mu, attrs: attrs}
}

// Shutdown 無需關閉
func (l *LegacyLogger) Shutdown() error {
	return nil
}
