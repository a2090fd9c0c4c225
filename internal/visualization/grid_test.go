package visualization

import (
	"strings"
	"testing"

	"github.com/nvandessel/gridmeet/internal/walk"
)

func TestRenderTrialMet(t *testing.T) {
	// Scripted n=3 trial that meets at (1,1): near goes east then north,
	// far goes west then south.
	r, err := walk.RunTrial(3, walk.NewScript(true, true, false, false))
	if err != nil {
		t.Fatalf("RunTrial: %v", err)
	}
	if !r.Met {
		t.Fatal("scripted trial should meet")
	}

	out := RenderTrial(r)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("render has %d lines, want 3", len(lines))
	}

	// Meeting cell (1,1) is the middle of the middle row.
	middle := strings.Fields(lines[1])
	if middle[1] != glyphMeeting {
		t.Errorf("cell (1,1) = %q, want %q\n%s", middle[1], glyphMeeting, out)
	}

	// Start corners were visited: (0,0) bottom-left, (2,2) top-right.
	bottom := strings.Fields(lines[2])
	top := strings.Fields(lines[0])
	if bottom[0] != glyphNear {
		t.Errorf("cell (0,0) = %q, want %q\n%s", bottom[0], glyphNear, out)
	}
	if top[2] != glyphFar {
		t.Errorf("cell (2,2) = %q, want %q\n%s", top[2], glyphFar, out)
	}
}

func TestRenderTrialNotMet(t *testing.T) {
	// All heads: near goes east twice to (2,0), far goes west twice to
	// (0,2). No meeting.
	r, err := walk.RunTrial(3, walk.NewScript(true, true, true, true))
	if err != nil {
		t.Fatalf("RunTrial: %v", err)
	}
	if r.Met {
		t.Fatal("scripted trial should not meet")
	}

	out := RenderTrial(r)
	if !strings.Contains(out, glyphNearEnd) {
		t.Errorf("render missing near final marker:\n%s", out)
	}
	if !strings.Contains(out, glyphFarEnd) {
		t.Errorf("render missing far final marker:\n%s", out)
	}
	if strings.Contains(out, glyphMeeting) {
		t.Errorf("render has a meeting marker for an unmet trial:\n%s", out)
	}
}

func TestRenderTrialSingleCell(t *testing.T) {
	r, err := walk.RunTrial(1, walk.NewScript())
	if err != nil {
		t.Fatalf("RunTrial: %v", err)
	}

	out := RenderTrial(r)
	if strings.TrimSpace(out) != glyphMeeting {
		t.Errorf("1x1 render = %q, want single %q", out, glyphMeeting)
	}
}

func TestRenderTrialDimensions(t *testing.T) {
	for n := 2; n <= 8; n++ {
		r, err := walk.RunTrial(n, walk.NewCoinSource(uint64(n)))
		if err != nil {
			t.Fatalf("RunTrial(%d): %v", n, err)
		}
		out := RenderTrial(r)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != n {
			t.Errorf("n=%d: %d lines, want %d", n, len(lines), n)
		}
		for _, line := range lines {
			if got := len(strings.Fields(line)); got != n {
				t.Errorf("n=%d: row has %d cells, want %d", n, got, n)
			}
		}
	}
}
