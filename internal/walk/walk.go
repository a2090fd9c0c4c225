// Package walk implements the single-trial simulator: two walkers released
// from opposite corners of an n×n grid, each flipping a fair coin every
// round to pick an axis, always moving toward the other walker's corner.
//
// The near walker starts at (0,0) and may only step east or north; the far
// walker starts at (n-1,n-1) and may only step west or south. A trial runs
// exactly n-1 rounds. When the coin picks an axis whose coordinate is
// already saturated, the flip is wasted and the walker stays put for that
// round; the path still records one entry per round.
package walk

import (
	"errors"
	"fmt"

	"github.com/nvandessel/gridmeet/internal/grid"
)

// ErrInvalidParameter is returned when a caller supplies an out-of-range
// simulation parameter. It is always detected before any simulation work.
var ErrInvalidParameter = errors.New("invalid parameter")

// TrialResult is the complete record of one trial.
type TrialResult struct {
	// N is the grid dimension the trial ran on.
	N int `json:"n"`

	// Met reports whether both walkers occupy the same cell after the
	// final round. Under the monotone move rules this is equivalent to
	// "the walkers were ever on the same cell" (see TestMeetingIsFinal).
	Met bool `json:"met"`

	// StepsTaken is always N-1; the trial never stops early.
	StepsTaken int `json:"steps_taken"`

	// NearPath and FarPath hold each walker's position before any move
	// followed by its position after every round, so both have length N.
	NearPath []grid.Position `json:"near_path"`
	FarPath  []grid.Position `json:"far_path"`
}

// FinalNear returns the near walker's position after the last round.
func (r TrialResult) FinalNear() grid.Position {
	return r.NearPath[len(r.NearPath)-1]
}

// FinalFar returns the far walker's position after the last round.
func (r TrialResult) FinalFar() grid.Position {
	return r.FarPath[len(r.FarPath)-1]
}

// MeetingIndex returns the anti-diagonal index of the shared final cell,
// or -1 when the walkers did not meet. When they met, the index is the
// final x-coordinate by construction.
func (r TrialResult) MeetingIndex() int {
	if !r.Met {
		return -1
	}
	return grid.PointIndex(r.N, r.FinalNear())
}

// Distance returns the Manhattan distance between the walkers after the
// given round (0 = starting positions).
func (r TrialResult) Distance(round int) int {
	return r.NearPath[round].ManhattanDistance(r.FarPath[round])
}

// RunTrial executes one full trial on an n×n grid, drawing every coin flip
// from src: one flip for the near walker and one for the far walker per
// round, near first. The outcome is fully determined by src, so a scripted
// source reproduces a trial exactly.
func RunTrial(n int, src CoinSource) (TrialResult, error) {
	if n < 1 {
		return TrialResult{}, fmt.Errorf("run trial: n must be >= 1, got %d: %w", n, ErrInvalidParameter)
	}

	near := grid.Position{X: 0, Y: 0}
	far := grid.Position{X: n - 1, Y: n - 1}

	nearPath := make([]grid.Position, 1, n)
	farPath := make([]grid.Position, 1, n)
	nearPath[0] = near
	farPath[0] = far

	for round := 1; round < n; round++ {
		// Near walker: heads = east, tails = north. The move is a no-op
		// when the chosen coordinate is already at n-1.
		if src.Flip() {
			if near.X < n-1 {
				near.X++
			}
		} else {
			if near.Y < n-1 {
				near.Y++
			}
		}

		// Far walker, mirrored: heads = west, tails = south.
		if src.Flip() {
			if far.X > 0 {
				far.X--
			}
		} else {
			if far.Y > 0 {
				far.Y--
			}
		}

		nearPath = append(nearPath, near)
		farPath = append(farPath, far)
	}

	return TrialResult{
		N:          n,
		Met:        near == far,
		StepsTaken: n - 1,
		NearPath:   nearPath,
		FarPath:    farPath,
	}, nil
}
