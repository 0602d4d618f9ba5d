package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/skyexplorer/internal/booking"
	"github.com/five82/skyexplorer/internal/logtail"
)

func TestPrintCalendar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintCalendar(&buf, time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "February 2025\n"))
	assert.Contains(t, out, "Sun Mon Tue Wed Thu Fri Sat")
	assert.Contains(t, out, " 28")
	assert.NotContains(t, out, " 29")
}

func TestPrintDestinations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintDestinations(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(booking.Destinations))
	assert.Contains(t, lines[0], "Paris")
	assert.Contains(t, lines[0], "from $299")
}

func TestSearch_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	q, err := Search(&buf, SearchOptions{
		From:       "lhr",
		To:         "Tokyo (NRT)",
		Depart:     "2025-03-15",
		Return:     "2025-03-22",
		Passengers: "2",
	})
	require.NoError(t, err)

	assert.Equal(t, booking.RoundTrip, q.TripType)
	require.NotNil(t, q.Return)
	assert.Equal(t, "2025-03-22", q.Return.String())
	assert.Equal(t, 2, q.Passengers)
	assert.True(t, strings.HasPrefix(buf.String(), "Search: Searching flights from London (LHR) to Tokyo (NRT)"))
}

func TestSearch_MissingFields(t *testing.T) {
	var buf bytes.Buffer
	_, err := Search(&buf, SearchOptions{Trip: "round-trip", From: "JFK"})
	require.ErrorIs(t, err, booking.ErrMissingRequiredField)
	assert.Equal(t, "Missing information: Please fill in all required fields\n", buf.String())
}

func TestSearch_OneWayIgnoresReturn(t *testing.T) {
	var buf bytes.Buffer
	q, err := Search(&buf, SearchOptions{
		Trip:       "oneway",
		From:       "DXB",
		To:         "BOM",
		Depart:     "2025-07-04",
		Passengers: "0",
	})
	require.NoError(t, err)
	assert.Nil(t, q.Return)
	assert.Equal(t, 1, q.Passengers)
}

func TestSearch_BadInput(t *testing.T) {
	tests := []struct {
		name string
		opts SearchOptions
		want string
	}{
		{"unknown airport", SearchOptions{From: "ORD"}, `unknown airport "ORD"`},
		{"bad date", SearchOptions{Depart: "15/03/2025"}, "parse departure date"},
		{"bad trip", SearchOptions{Trip: "return"}, "trip type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := Search(&buf, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, buf.String())
		})
	}
}

func TestResolveTheme(t *testing.T) {
	assert.Equal(t, "Kanagawa", resolveTheme("Kanagawa", "Nightfox", "Slate"))
	assert.Equal(t, "Slate", resolveTheme("", "", ""))

	// A configured theme pins startup over the one saved by cycling.
	assert.Equal(t, "Nightfox", resolveTheme("", "Nightfox", "Kanagawa"))
	// Without one, the saved choice persists across launches.
	assert.Equal(t, "Kanagawa", resolveTheme("", "", "Kanagawa"))
}

func TestPrintLogs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SKYEXPLORER_LOG_DIR", dir)
	t.Setenv("SKYEXPLORER_LOG_LEVEL", "")
	t.Setenv("SKYEXPLORER_THEME", "")

	content := strings.Join([]string{
		`level=info msg="session started" session=aaaa1111-0000`,
		`level=info msg="session started" session=bbbb2222-0000`,
		`level=info msg=Search session=aaaa1111-0000 title=Search`,
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skyexplorer.log"), []byte(content), 0o644))

	var buf bytes.Buffer
	configPath := filepath.Join(dir, "missing.toml")
	require.NoError(t, PrintLogs(&buf, configPath, logtail.Options{Session: "aaaa"}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "msg=Search")

	buf.Reset()
	require.NoError(t, PrintLogs(&buf, configPath, logtail.Options{MaxLines: 1}))
	assert.Equal(t, "level=info msg=Search session=aaaa1111-0000 title=Search\n", buf.String())
}
