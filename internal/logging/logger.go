// Package logging provides leveled logging and trial tracing for gridmeet.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A TrialLogger for structured JSONL per-trial traces
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/nvandessel/gridmeet/internal/walk"
)

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "debug", "info", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	return slog.New(slog.NewTextHandler(w, opts))
}

// TrialLogger writes one JSONL line per completed trial. It is safe for
// concurrent use, so parallel analysis workers may share one instance.
// A nil TrialLogger is safe to use; all methods are no-ops on nil receiver.
type TrialLogger struct {
	mu   sync.Mutex
	file *os.File
}

// NewTrialLogger opens path for appending trial traces. Returns nil when
// path is empty or the file cannot be opened; all methods are nil-safe.
func NewTrialLogger(path string) *TrialLogger {
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}

	return &TrialLogger{file: f}
}

// trialEvent is the JSONL shape of one trial trace line.
type trialEvent struct {
	Time         string `json:"time"`
	N            int    `json:"n"`
	Met          bool   `json:"met"`
	MeetingIndex int    `json:"meeting_index"`
	FinalNearX   int    `json:"final_near_x"`
	FinalNearY   int    `json:"final_near_y"`
	FinalFarX    int    `json:"final_far_x"`
	FinalFarY    int    `json:"final_far_y"`
}

// Log writes the outcome of one trial as a single JSONL line.
// Safe to call on nil receiver.
func (tl *TrialLogger) Log(r walk.TrialResult) {
	if tl == nil || tl.file == nil {
		return
	}

	near := r.FinalNear()
	far := r.FinalFar()
	event := trialEvent{
		Time:         time.Now().UTC().Format(time.RFC3339Nano),
		N:            r.N,
		Met:          r.Met,
		MeetingIndex: r.MeetingIndex(),
		FinalNearX:   near.X,
		FinalNearY:   near.Y,
		FinalFarX:    far.X,
		FinalFarY:    far.Y,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')

	tl.mu.Lock()
	defer tl.mu.Unlock()
	_, _ = tl.file.Write(data)
}

// Close closes the underlying file. Safe to call on nil receiver.
func (tl *TrialLogger) Close() {
	if tl == nil || tl.file == nil {
		return
	}

	tl.mu.Lock()
	defer tl.mu.Unlock()

	tl.file.Close()
	tl.file = nil
}
