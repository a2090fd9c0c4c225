// Package visualization renders trial outcomes as ASCII grids.
package visualization

import (
	"strings"

	"github.com/nvandessel/gridmeet/internal/grid"
	"github.com/nvandessel/gridmeet/internal/walk"
)

// Cell glyphs, later entries win when a cell is visited by both walkers.
const (
	glyphEmpty   = "."
	glyphNear    = "n"
	glyphFar     = "f"
	glyphBoth    = "x"
	glyphNearEnd = "N"
	glyphFarEnd  = "F"
	glyphMeeting = "*"
)

// RenderTrial draws the n x n lattice with both walker paths overlaid.
// Rows are printed with y increasing upward, so the near walker's corner
// (0,0) appears bottom-left and the far walker's corner top-right.
//
//	n  visited by the near walker     N  its final cell
//	f  visited by the far walker      F  its final cell
//	x  visited by both                *  the meeting cell
func RenderTrial(r walk.TrialResult) string {
	cells := make([][]string, r.N)
	for y := range cells {
		cells[y] = make([]string, r.N)
		for x := range cells[y] {
			cells[y][x] = glyphEmpty
		}
	}

	visited := map[grid.Position]int{}
	for _, p := range r.NearPath {
		visited[p] |= 1
	}
	for _, p := range r.FarPath {
		visited[p] |= 2
	}

	for p, mask := range visited {
		switch mask {
		case 1:
			cells[p.Y][p.X] = glyphNear
		case 2:
			cells[p.Y][p.X] = glyphFar
		default:
			cells[p.Y][p.X] = glyphBoth
		}
	}

	near := r.FinalNear()
	far := r.FinalFar()
	if r.Met {
		cells[near.Y][near.X] = glyphMeeting
	} else {
		cells[near.Y][near.X] = glyphNearEnd
		cells[far.Y][far.X] = glyphFarEnd
	}

	var sb strings.Builder
	for y := r.N - 1; y >= 0; y-- {
		sb.WriteString(strings.Join(cells[y], " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
