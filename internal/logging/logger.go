package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	apperrors "ledgerly/internal/errors"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// Logger is a leveled wrapper over the standard library logger.
type Logger struct {
	*log.Logger
	level Level
}

// NewLogger creates a logger writing to stdout.
func NewLogger(level Level) *Logger {
	return NewLoggerTo(os.Stdout, level)
}

func NewLoggerTo(w io.Writer, level Level) *Logger {
	return &Logger{
		Logger: log.New(w, "", 0),
		level:  level,
	}
}

// ParseLevel maps "debug", "info", "warn", "error" to a Level. Unknown values yield INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) formatMessage(level Level, msg string) string {
	_, file, line, ok := runtime.Caller(3)
	caller := "unknown"
	if ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	return fmt.Sprintf("[%s] %-5s %s: %s",
		timestamp,
		levelNames[level],
		caller,
		msg,
	)
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if l.level <= level {
		l.Output(3, l.formatMessage(level, fmt.Sprintf(format, v...)))
	}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.logf(DEBUG, format, v...) }

func (l *Logger) Info(format string, v ...interface{}) { l.logf(INFO, format, v...) }

func (l *Logger) Warn(format string, v ...interface{}) { l.logf(WARN, format, v...) }

func (l *Logger) Error(format string, v ...interface{}) { l.logf(ERROR, format, v...) }

// LogError logs a DomainError with its kind, code and cause.
func (l *Logger) LogError(err error) {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		context := []string{
			fmt.Sprintf("Kind: %s", domainErr.Kind),
			fmt.Sprintf("Code: %s", domainErr.Code),
			fmt.Sprintf("Message: %s", domainErr.Message),
		}
		if domainErr.Err != nil {
			context = append(context, fmt.Sprintf("Cause: %v", domainErr.Err))
		}

		l.logf(ERROR, "domain error:\n\t%s", strings.Join(context, "\n\t"))
		return
	}
	l.logf(ERROR, "unexpected error: %v", err)
}

// Default logger instance
var Default = NewLogger(INFO)
