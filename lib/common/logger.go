package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// --------------------------------------------------------------------------
// Log Levels
// --------------------------------------------------------------------------

// LogLevel controls which messages a Logger writes.
type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

// logLevel is the process wide log level. The utility is strictly
// sequential, so a plain variable set once at startup is sufficient.
var logLevel = LevelInfo

// SetLogLevel sets the process wide log level.
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// ParseLogLevel converts a string level to a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
}

// --------------------------------------------------------------------------
// Custom Logger
// --------------------------------------------------------------------------

// Logger writes leveled diagnostic messages with custom formatting.
type Logger struct {
	name   string
	logger *log.Logger
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if logLevel >= LevelDebug {
		l.log("DEBUG", format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if logLevel >= LevelInfo {
		l.log("INFO", format, args...)
	}
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	if logLevel >= LevelWarning {
		l.log("WARN", format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if logLevel >= LevelError {
		l.log("ERROR", format, args...)
	}
}

// log formats and writes a log message. this internal helper is used by the public methods
func (l *Logger) log(levelStr string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-10s | %s", levelStr, l.name, message)
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// newLogger creates a Logger writing to the given writer. Used by tests.
func newLogger(name string, w io.Writer) *Logger {
	return &Logger{
		name:   name,
		logger: log.New(w, "", log.Ldate|log.Ltime),
	}
}

// CreateLogger creates a named Logger. Diagnostic output goes to stderr so
// that operation results keep stdout to themselves.
func CreateLogger(name string) *Logger {
	return newLogger(name, os.Stderr)
}
