// Package grid defines the square-lattice geometry shared by the walk
// simulator and the analysis layer: positions, the anti-diagonal of
// possible meeting cells, and their display labels.
package grid

import "fmt"

// Position is a cell on an n×n grid. It is a plain value type; two
// Positions refer to the same cell iff their coordinates are equal.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ManhattanDistance returns the city-block distance between p and q.
func (p Position) ManhattanDistance(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// MeetingPoints returns the n cells on the SE-NW anti-diagonal of an n×n
// grid, {(i, n-1-i) : i = 0..n-1}, ordered by i. Given the walkers'
// opposite-corner starts and toward-each-other-only moves, these are the
// only cells both can occupy after n-1 rounds.
func MeetingPoints(n int) []Position {
	points := make([]Position, n)
	for i := 0; i < n; i++ {
		points[i] = Position{X: i, Y: n - 1 - i}
	}
	return points
}

// PointIndex returns the anti-diagonal index of p on an n×n grid, or -1
// when p is not a meeting point. For cells on the anti-diagonal the index
// is exactly p.X.
func PointIndex(n int, p Position) int {
	if p.X < 0 || p.X >= n || p.Y != n-1-p.X {
		return -1
	}
	return p.X
}

// PointLabel returns the display label for meeting point i: "A" for 0,
// "B" for 1, and so on. Past "Z" the label falls back to the numeric
// form "P26", "P27", ...
func PointLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("P%d", i)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
