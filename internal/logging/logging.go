// Package logging sets up the file logger. The terminal is owned by the UI,
// so everything goes to a size-rotated file instead of stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/five82/skyexplorer/internal/booking"
)

// Options configure New.
type Options struct {
	Path       string
	Level      string
	MaxSizeMB  int // zero uses 5
	MaxBackups int // zero uses 3
}

// New returns a logger writing to a rotating file at opts.Path. The returned
// closer flushes and closes the file.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 5
	}
	maxBackups := opts.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		LocalTime:  true,
	}

	logger := NewWithWriter(rotator, opts.Level)
	return logger, rotator, nil
}

// NewWithWriter builds a logger on an arbitrary writer.
func NewWithWriter(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(ParseLevel(level))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}

// ParseLevel maps a config value to a logrus level, defaulting to info.
func ParseLevel(value string) logrus.Level {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(trimmed)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Sink returns a NotificationSink that writes each notice to log.
func Sink(log logrus.FieldLogger) booking.NotificationSink {
	return booking.SinkFunc(func(n booking.Notice) {
		entry := log.WithFields(logrus.Fields{
			"level_hint": n.Level.String(),
			"title":      n.Title,
		})
		body := strings.ReplaceAll(n.Body, "\n", " | ")
		if n.Level == booking.LevelError {
			entry.Warn(body)
			return
		}
		entry.Info(body)
	})
}
