// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     log
// Description: Core logger implementation with fields and text output
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields represents custom key-value pairs for structured logging.
type Fields map[string]interface{}

// Err creates an error field for logging.
func Err(err error) Fields {
	return Fields{"error": err}
}

// Logger is a leveled logger with contextual fields. Loggers are cheap to
// derive; WithField and friends return clones so a derived logger never
// mutates its parent.
type Logger struct {
	level  Level
	output io.Writer
	name   string
	fields Fields

	mutex sync.Mutex
}

// Config represents logger configuration.
type Config struct {
	Level  Level
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration.
func New() *Logger {
	return &Logger{
		level:  DefaultLevel(),
		output: os.Stderr,
		fields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration.
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:  config.Level,
		output: config.Output,
		name:   config.Name,
		fields: make(Fields),
	}
	if logger.output == nil {
		logger.output = os.Stderr
	}
	return logger
}

// clone returns a copy of the logger sharing the output writer.
func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &Logger{
		level:  l.level,
		output: l.output,
		name:   l.name,
		fields: fields,
	}
}

// WithLevel returns a logger with the given minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithOutput returns a logger writing to the given destination.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	return c
}

// WithName returns a named logger; the name appears in every entry.
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a logger that adds a persistent field to all entries.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a logger that adds persistent fields to all entries.
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// Trace logs a message at trace level.
func (l *Logger) Trace(msg string, fields ...Fields) {
	l.log(LevelTrace, msg, fields...)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string, fields ...Fields) {
	l.log(LevelError, msg, fields...)
}

// Fatal logs a message at fatal level and exits with status 1.
func (l *Logger) Fatal(msg string, fields ...Fields) {
	l.log(LevelFatal, msg, fields...)
	os.Exit(1)
}

func (l *Logger) log(level Level, msg string, fieldSets ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	merged := make(Fields, len(l.fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, fs := range fieldSets {
		for k, v := range fs {
			merged[k] = v
		}
	}

	line := formatEntry(time.Now(), level, l.name, msg, merged)

	l.mutex.Lock()
	defer l.mutex.Unlock()
	fmt.Fprintln(l.output, line)
}

// formatEntry renders one log line: timestamp, level, optional logger name,
// message, then fields sorted by key for stable output.
func formatEntry(ts time.Time, level Level, name, msg string, fields Fields) string {
	var b strings.Builder

	b.WriteString(ts.Format("2006-01-02T15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.ShortString())
	b.WriteString("]")

	if name != "" {
		b.WriteString(" (")
		b.WriteString(name)
		b.WriteString(")")
	}

	b.WriteString(" ")
	b.WriteString(msg)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}

	return b.String()
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMutex  sync.RWMutex
)

// GetDefault returns the process-wide default logger.
func GetDefault() *Logger {
	defaultOnce.Do(func() {
		defaultMutex.Lock()
		defer defaultMutex.Unlock()
		if defaultLogger == nil {
			defaultLogger = New()
		}
	})

	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger.
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultOnce.Do(func() {})
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}

// Discard returns a logger that drops everything. The interactive shell uses
// it when no log file is configured, keeping the TUI output clean.
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal, Output: io.Discard})
}
