package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/gridmeet/internal/walk"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message missing from output")
	}
}

func TestNilTrialLoggerIsSafe(t *testing.T) {
	var tl *TrialLogger
	r, err := walk.RunTrial(3, walk.NewCoinSource(1))
	if err != nil {
		t.Fatalf("RunTrial: %v", err)
	}
	tl.Log(r) // must not panic
	tl.Close()

	if got := NewTrialLogger(""); got != nil {
		t.Error("NewTrialLogger(\"\") should return nil")
	}
}

func TestTrialLoggerWritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trials.jsonl")
	tl := NewTrialLogger(path)
	if tl == nil {
		t.Fatal("NewTrialLogger returned nil for a writable path")
	}

	for i := 0; i < 3; i++ {
		r, err := walk.RunTrial(4, walk.NewCoinSource(uint64(i+1)))
		if err != nil {
			t.Fatalf("RunTrial: %v", err)
		}
		tl.Log(r)
	}
	tl.Close()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open trace file: %v", err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines, err)
		}
		if event["n"] != float64(4) {
			t.Errorf("line %d: n = %v, want 4", lines, event["n"])
		}
		if _, ok := event["met"]; !ok {
			t.Errorf("line %d: missing met field", lines)
		}
		lines++
	}
	if lines != 3 {
		t.Errorf("trace file has %d lines, want 3", lines)
	}
}
