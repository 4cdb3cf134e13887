package tapestrytest

import (
	"strings"
	"sync"

	"github.com/jdziat/tapestry-go"
)

// Entry is one captured log call.
type Entry struct {
	Level   string
	Message string
	Args    []any
}

// Attr returns the value logged under key.
func (e Entry) Attr(key string) (any, bool) {
	for i := 0; i+1 < len(e.Args); i += 2 {
		if k, ok := e.Args[i].(string); ok && k == key {
			return e.Args[i+1], true
		}
	}
	return nil, false
}

// RecordingLogger implements tapestry.StructuredLogger and keeps every
// entry in memory. It is safe for concurrent use.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []Entry
}

var _ tapestry.StructuredLogger = (*RecordingLogger)(nil)

// NewRecordingLogger creates an empty recording logger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{entries: make([]Entry, 0)}
}

func (l *RecordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: msg, Args: append([]any(nil), args...)})
}

// Debug implements tapestry.StructuredLogger.
func (l *RecordingLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }

// Info implements tapestry.StructuredLogger.
func (l *RecordingLogger) Info(msg string, args ...any) { l.record("INFO", msg, args) }

// Warn implements tapestry.StructuredLogger.
func (l *RecordingLogger) Warn(msg string, args ...any) { l.record("WARN", msg, args) }

// Error implements tapestry.StructuredLogger.
func (l *RecordingLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

// Entries returns a copy of all captured entries.
func (l *RecordingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry{}, l.entries...)
}

// EntriesAt returns the captured entries with the given level.
func (l *RecordingLogger) EntriesAt(level string) []Entry {
	var out []Entry
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any entry's message contains substr.
func (l *RecordingLogger) Contains(substr string) bool {
	for _, e := range l.Entries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// Len returns the number of captured entries.
func (l *RecordingLogger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Reset clears all captured entries.
func (l *RecordingLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]Entry, 0)
}
