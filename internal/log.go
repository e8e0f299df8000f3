package internal

import (
	"io"
	"log"
	"os"
)

// LogLevel represents logging verbosity
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Logger provides leveled logging over the standard logger
type Logger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger writing to the given sink at the given level
func NewLogger(level LogLevel, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewDefaultLogger creates a logger configured from the LOG_LEVEL environment
// variable (ERROR, WARN, INFO, DEBUG). Unset or unrecognized values mean INFO.
func NewDefaultLogger() *Logger {
	level := LogLevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		level = LogLevelError
	case "WARN":
		level = LogLevelWarn
	case "DEBUG":
		level = LogLevelDebug
	}
	return NewLogger(level, os.Stderr)
}

func (l *Logger) Error(format string, args ...interface{}) { l.logAt(LogLevelError, "[ERROR] ", format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.logAt(LogLevelWarn, "[WARN] ", format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.logAt(LogLevelInfo, "[INFO] ", format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.logAt(LogLevelDebug, "[DEBUG] ", format, args...) }

func (l *Logger) logAt(level LogLevel, prefix, format string, args ...interface{}) {
	if l.level >= level {
		l.out.Printf(prefix+format, args...)
	}
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel { return l.level }

// DefaultLogger is the process-wide logger instance
var DefaultLogger = NewDefaultLogger()
