// Package log is a thin, switchable facade over logrus.
//
// Nothing is emitted unless logs.write is enabled, so library callers can log freely.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/odyssey-club/aiosource/filesystem"
	"github.com/odyssey-club/aiosource/key"
	"github.com/odyssey-club/aiosource/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Setup opens the daily log file and applies formatter and level from the configuration.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f)
	return nil
}

// SetOutput enables logging to w with the configured formatter. Used by tests.
func SetOutput(w io.Writer) {
	enabled = true
	configure(w)
}

func configure(w io.Writer) {
	logrus.SetOutput(w)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

// Entry is a field-scoped logger. The zero value discards everything.
type Entry struct {
	entry *logrus.Entry
}

// With scopes subsequent messages to the given fields.
func With(fields Fields) Entry {
	if !enabled {
		return Entry{}
	}
	return Entry{entry: logrus.WithFields(fields)}
}

func (e Entry) Debugf(format string, args ...any) {
	if e.entry != nil {
		e.entry.Debugf(format, args...)
	}
}

func (e Entry) Infof(format string, args ...any) {
	if e.entry != nil {
		e.entry.Infof(format, args...)
	}
}

func (e Entry) Warnf(format string, args ...any) {
	if e.entry != nil {
		e.entry.Warnf(format, args...)
	}
}

func (e Entry) Errorf(format string, args ...any) {
	if e.entry != nil {
		e.entry.Errorf(format, args...)
	}
}

func emit(level logrus.Level, args ...any) {
	if enabled {
		logrus.StandardLogger().Log(level, args...)
	}
}

func emitf(level logrus.Level, format string, args ...any) {
	if enabled {
		logrus.StandardLogger().Logf(level, format, args...)
	}
}

func Error(args ...any)                 { emit(logrus.ErrorLevel, args...) }
func Errorf(format string, args ...any) { emitf(logrus.ErrorLevel, format, args...) }
func Warn(args ...any)                  { emit(logrus.WarnLevel, args...) }
func Warnf(format string, args ...any)  { emitf(logrus.WarnLevel, format, args...) }
func Info(args ...any)                  { emit(logrus.InfoLevel, args...) }
func Infof(format string, args ...any)  { emitf(logrus.InfoLevel, format, args...) }
func Debug(args ...any)                 { emit(logrus.DebugLevel, args...) }
func Debugf(format string, args ...any) { emitf(logrus.DebugLevel, format, args...) }
func Trace(args ...any)                 { emit(logrus.TraceLevel, args...) }
func Tracef(format string, args ...any) { emitf(logrus.TraceLevel, format, args...) }
