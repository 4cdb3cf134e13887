package tapestry

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
)

// Logger is the printf-style logger accepted by WithLogger.
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// StructuredLogger receives the endpoint's log output as a message plus
// alternating key/value pairs, the same calling convention as log/slog.
//
//	ep, _ := tapestry.NewEndpoint(
//	    tapestry.WithStructuredLogger(tapestry.NewSlogAdapter(slog.Default())),
//	)
type StructuredLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// printfLogger renders structured calls as single lines such as
// "[WARN] tapestry request rejected | error=... code=VALIDATION".
type printfLogger struct {
	out Logger
}

// WrapPrintfLogger adapts a printf-style Logger to StructuredLogger.
func WrapPrintfLogger(l Logger) StructuredLogger {
	return printfLogger{out: l}
}

// WrapStdLogger adapts a *log.Logger to StructuredLogger.
func WrapStdLogger(l *log.Logger) StructuredLogger {
	return WrapPrintfLogger(l)
}

func (p printfLogger) line(level, msg string, args []any) {
	var sb strings.Builder
	sb.WriteString("[" + level + "] " + msg)
	for i := 0; i+1 < len(args); i += 2 {
		if i == 0 {
			sb.WriteString(" |")
		}
		fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
	}
	// msg may contain '%'; never use it as a format string.
	p.out.Printf("%s", sb.String())
}

func (p printfLogger) Debug(msg string, args ...any) { p.line("DEBUG", msg, args) }
func (p printfLogger) Info(msg string, args ...any) { p.line("INFO", msg, args) }
func (p printfLogger) Warn(msg string, args ...any) { p.line("WARN", msg, args) }
func (p printfLogger) Error(msg string, args ...any) { p.line("ERROR", msg, args) }

// NopLogger discards everything. It is the default when neither a
// logger nor debug mode is configured.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}

var (
	_ StructuredLogger = printfLogger{}
	_ StructuredLogger = NopLogger{}
	_ Logger           = NopLogger{}
	_ StructuredLogger = (*SlogAdapter)(nil)
)

// SlogAdapter sends endpoint logs to a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }
func (a *SlogAdapter) Info(msg string, args ...any) { a.logger.Info(msg, args...) }
func (a *SlogAdapter) Warn(msg string, args ...any) { a.logger.Warn(msg, args...) }
func (a *SlogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

// With returns an adapter that adds args to every record.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.With(args...)}
}

// newDebugLogger is installed when Debug is set and no logger was given.
func newDebugLogger() StructuredLogger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogAdapter(slog.New(h)).With("sdk", "tapestry")
}
