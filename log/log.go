// Package log provides a thread-safe, structured logging infrastructure with filesystem-based persistence.
package log

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/anisan-cli/jikancsv/key"
	"github.com/anisan-cli/jikancsv/where"
	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// enabled indicates the persistent logging state for the active application instance.
var enabled bool

// Setup initializes the logging subsystem, including rotated file handles, formatting, and severity levels based on global configuration.
// If logging is disabled, all subsequent log emissions are silently discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	keep := time.Duration(viper.GetInt(key.LogsKeep)) * 24 * time.Hour

	out, err := rotated(filepath.Join(dir, "%Y-%m-%d.log"), keep)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(out)

	var formatter logrus.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	if viper.GetBool(key.LogsJson) {
		formatter = &logrus.JSONFormatter{PrettyPrint: true}
	}
	logrus.SetFormatter(formatter)

	lvl := viper.GetString(key.LogsLevel)
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	// Warnings and errors are duplicated into a separate file so failed requests are easy to audit.
	problems, err := rotated(filepath.Join(dir, "errors-%Y-%m-%d.log"), keep)
	if err != nil {
		return fmt.Errorf("open error log file: %w", err)
	}
	logrus.AddHook(lfshook.NewHook(lfshook.WriterMap{
		logrus.WarnLevel:  problems,
		logrus.ErrorLevel: problems,
		logrus.FatalLevel: problems,
		logrus.PanicLevel: problems,
	}, formatter))

	return nil
}

func rotated(pattern string, keep time.Duration) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(keep),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
}

// WithField returns an entry carrying a structured field; it is a no-op sink when logging is disabled.
func WithField(name string, value any) Entry {
	return Entry{fields: logrus.Fields{name: value}}
}

type entryKey struct{}

// NewContext returns a copy of ctx carrying e.
// Code further down the call chain logs through FromContext, so fields such as the run id reach every entry.
func NewContext(ctx context.Context, e Entry) context.Context {
	return context.WithValue(ctx, entryKey{}, e)
}

// FromContext returns the entry stored by NewContext, or an empty one.
func FromContext(ctx context.Context) Entry {
	if e, ok := ctx.Value(entryKey{}).(Entry); ok {
		return e
	}
	return Entry{}
}

// Entry accumulates structured fields for a single emission.
type Entry struct {
	fields logrus.Fields
}

// WithField adds another structured field to the entry.
func (e Entry) WithField(name string, value any) Entry {
	fields := make(logrus.Fields, len(e.fields)+1)
	for k, v := range e.fields {
		fields[k] = v
	}
	fields[name] = value
	return Entry{fields: fields}
}

func (e Entry) Info(args ...interface{}) {
	if enabled {
		logrus.WithFields(e.fields).Info(args...)
	}
}

func (e Entry) Warn(args ...interface{}) {
	if enabled {
		logrus.WithFields(e.fields).Warn(args...)
	}
}

func (e Entry) Debug(args ...interface{}) {
	if enabled {
		logrus.WithFields(e.fields).Debug(args...)
	}
}

// Severity-Specific Log Emissions - these functions proxy messages to the configured backend when logging is enabled.

func Panic(args ...interface{}) {
	if enabled {
		logrus.Panic(args...)
	}
}
func Panicf(format string, args ...interface{}) {
	if enabled {
		logrus.Panicf(format, args...)
	}
}
func Fatal(args ...interface{}) {
	if enabled {
		logrus.Fatal(args...)
	}
}
func Fatalf(format string, args ...interface{}) {
	if enabled {
		logrus.Fatalf(format, args...)
	}
}
func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
func Trace(args ...interface{}) {
	if enabled {
		logrus.Trace(args...)
	}
}
func Tracef(format string, args ...interface{}) {
	if enabled {
		logrus.Tracef(format, args...)
	}
}
