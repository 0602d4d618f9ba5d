package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skyexplorer.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	var all []string
	for i := 1; i <= 10; i++ {
		all = append(all, fmt.Sprintf("Line %d", i))
	}
	path := writeLog(t, all)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, all},
		{"read all (negative)", -1, all},
		{"read partial (5)", 5, all[5:]},
		{"read exactly all (10)", 10, all},
		{"read more than exists (20)", 20, all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, Options{MaxLines: tt.maxLines})
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_SessionFilter(t *testing.T) {
	path := writeLog(t, []string{
		`time="t1" level=info msg="session started" session=aaaa1111-0000`,
		`time="t2" level=info msg="session started" session=bbbb2222-0000`,
		`time="t3" level=warning msg="Missing information" session=aaaa1111-0000 title="Missing information"`,
		`time="t4" level=info msg="Search" session=bbbb2222-0000 title=Search`,
		`time="t5" level=info msg="session ended" session=aaaa1111-0000`,
	})

	got, err := Read(path, Options{Session: "aaaa1111"})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Read() returned %d lines, want 3: %v", len(got), got)
	}

	got, err = Read(path, Options{Session: "aaaa1111", MaxLines: 1})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 || !strings.Contains(got[0], "session ended") {
		t.Fatalf("Read() = %v, want last aaaa1111 line", got)
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), Options{MaxLines: 10})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}
