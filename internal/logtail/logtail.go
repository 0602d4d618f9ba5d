package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Options narrow what Read returns.
type Options struct {
	MaxLines int    // zero or negative returns every matching line
	Session  string // prefix of a session id; empty matches all lines
}

// Read returns the last opts.MaxLines matching lines of the log at path.
// A missing file yields no lines and no error.
func Read(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var all []string
	var ring []string
	if opts.MaxLines > 0 {
		ring = make([]string, opts.MaxLines)
	}
	count, idx := 0, 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !matchesSession(line, opts.Session) {
			continue
		}
		if ring == nil {
			all = append(all, line)
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % len(ring)
		if count < len(ring) {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if ring == nil {
		return all, nil
	}
	lines := make([]string, count)
	if count == len(ring) {
		for i := range count {
			lines[i] = ring[(idx+i)%len(ring)]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// matchesSession reports whether a logrus text line carries a session field
// starting with prefix.
func matchesSession(line, prefix string) bool {
	if prefix == "" {
		return true
	}
	return strings.Contains(line, "session="+prefix)
}
