package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func testLogger(name string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(name)
	l.SetOutput(&buf)
	l.now = func() time.Time {
		return time.Date(2025, 3, 9, 12, 30, 0, 0, time.UTC)
	}
	return l, &buf
}

func TestLoggerLine(t *testing.T) {
	l, buf := testLogger("dataset")
	l.Info("files written", "count", 5, "dir", "out")

	want := "2025-03-09T12:30:00Z INFO dataset: files written count=5 dir=out\n"
	if got := buf.String(); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	l, buf := testLogger("t")

	l.Debug("dropped")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	l.SetLevel(LevelDebug)
	l.Debug("kept")
	if !strings.Contains(buf.String(), "DEBUG t: kept") {
		t.Errorf("debug line missing after SetLevel: %q", buf.String())
	}

	buf.Reset()
	l.SetLevel(LevelError)
	l.Warn("dropped")
	l.Error("kept")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], "ERROR t: kept") {
		t.Errorf("error-level filter kept wrong lines: %q", buf.String())
	}
}

func TestLoggerDanglingKey(t *testing.T) {
	l, buf := testLogger("t")
	l.Info("odd", "key")
	if !strings.Contains(buf.String(), "key=(missing)") {
		t.Errorf("dangling key not marked: %q", buf.String())
	}
}

func TestLoggerConcurrent(t *testing.T) {
	l, buf := testLogger("t")

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				l.Info("line", "i", i)
			}
		}()
	}
	wg.Wait()

	got := strings.Count(buf.String(), "\n")
	if got != 100 {
		t.Errorf("wrote %d lines, want 100", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
