package logging

import (
	"fmt"
	"log"
	"os"
)

// Log levels, ordered by increasing criticality. This module only ever
// logs at InfoLevel today (the CLASS cell schema resolver's tolerant-miss
// path), but the full scale is kept so a Logger implementation can filter
// consistently regardless of which component ends up calling it.
const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel is what the C2 tolerant-miss path (an unresolved CLASS
	// schema) logs at.
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation.
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger is the collaborator components reach for when they need to record
// something without failing the call outright. The only mandated caller in
// this module is the CLASS cell schema resolver's tolerant-miss path, but
// any component may accept one. Every call is tagged with the buildID of
// the Build that triggered it, so log lines from concurrent Build calls
// can be told apart.
type Logger interface {
	Logf(level int, buildID string, format string, args ...interface{})
}

// StdLogger is a Logger writing to a wrapped *log.Logger. Lines below
// MinLevel are dropped. Build does not use it unless it is passed in
// explicitly; Build's default Logger is NopLogger.
type StdLogger struct {
	MinLevel int
	out      *log.Logger
}

// NewStdLogger returns a StdLogger writing to stderr at minLevel and above.
func NewStdLogger(minLevel int) *StdLogger {
	return &StdLogger{MinLevel: minLevel, out: log.New(os.Stderr, "", log.LstdFlags)}
}

// Logf writes a leveled, build-tagged log line if level is at or above MinLevel.
func (l *StdLogger) Logf(level int, buildID string, format string, args ...interface{}) {
	if level < l.MinLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if buildID != "" {
		l.out.Printf("[%s] build=%s %s", LogLevelToString(level), buildID, msg)
	} else {
		l.out.Printf("[%s] %s", LogLevelToString(level), msg)
	}
}

// NopLogger discards every line. Useful in tests that assert on returned
// values rather than log output.
type NopLogger struct{}

// Logf discards its arguments.
func (NopLogger) Logf(level int, buildID string, format string, args ...interface{}) {}
