package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/skyexplorer/internal/booking"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		" INFO ":  logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"chatty":  logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "skyexplorer.log")

	logger, closer, err := New(Options{Path: path, Level: "debug"})
	require.NoError(t, err)
	logger.WithField("session", "abc").Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "session=abc")
}

func TestNew_EmptyPathFails(t *testing.T) {
	_, _, err := New(Options{Path: "  "})
	assert.Error(t, err)
}

func TestSink_LogsNotices(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info")
	sink := Sink(logger)

	sink.Notify(booking.Notice{Level: booking.LevelInfo, Title: "Search", Body: "line one\nline two"})
	sink.Notify(booking.Notice{Level: booking.LevelError, Title: "Missing information", Body: booking.MissingFieldsMessage})

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=info")
	assert.Contains(t, lines[0], "line one | line two")
	assert.Contains(t, lines[1], "level=warning")
	assert.Contains(t, lines[1], "Please fill in all required fields")
	assert.Contains(t, lines[1], "level_hint=error")
	assert.Contains(t, lines[0], "title=Search")
}
