package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevel selects the minimum severity that gets written.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

type Config struct {
	Level      LogLevel
	Format     string // "json" or "text"
	Output     string // "stdout", "stderr" or a file path
	TimeFormat string
	Colors     bool
	AppName    string
}

// Logger wraps a logrus entry. Derived loggers carry their own copy of
// the fields, so a WithField chain never leaks into its parent.
type Logger struct {
	entry *logrus.Entry
}

func NewLogger(cfg *Config) (*Logger, error) {
	l := logrus.New()
	l.SetLevel(parseLevel(cfg.Level))

	if cfg.Format == "json" {
		l.SetFormatter(&jsonFormatter{timeFormat: cfg.TimeFormat, app: cfg.AppName})
	} else {
		l.SetFormatter(&textFormatter{timeFormat: cfg.TimeFormat, app: cfg.AppName, colors: cfg.Colors})
	}

	sink, err := openSink(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output: %w", err)
	}
	l.SetOutput(sink)

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// parseLevel maps an unrecognized level to info rather than failing startup.
func parseLevel(level LogLevel) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

func openSink(name string) (io.Writer, error) {
	switch name {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	}
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithError records the error message under the "error" key, flattened to
// a string. Most error types JSON-marshal to an empty object.
func (l *Logger) WithError(err error) *Logger {
	return l.WithField("error", err.Error())
}

func (l *Logger) Debug(msg string) { l.entry.Debug(msg) }
func (l *Logger) Info(msg string)  { l.entry.Info(msg) }
func (l *Logger) Warn(msg string)  { l.entry.Warn(msg) }
func (l *Logger) Error(msg string) { l.entry.Error(msg) }
func (l *Logger) Fatal(msg string) { l.entry.Fatal(msg) }

// SetOutput redirects every logger derived from the same root.
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}
