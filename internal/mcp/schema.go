// Package mcp provides an MCP (Model Context Protocol) server for gridmeet.
package mcp

// TrialInput defines the input for the gridmeet_trial tool.
type TrialInput struct {
	N    int    `json:"n" jsonschema:"Grid size (number of points per side; must be >= 1)"`
	Seed uint64 `json:"seed,omitempty" jsonschema:"Seed for the coin-flip generator (0 or omitted draws a random seed)"`
}

// TrialOutput defines the output for the gridmeet_trial tool.
type TrialOutput struct {
	N            int         `json:"n" jsonschema:"Grid size used"`
	Met          bool        `json:"met" jsonschema:"Whether the walkers occupied the same point after the final round"`
	Steps        int         `json:"steps" jsonschema:"Number of rounds walked (n-1)"`
	MeetingLabel string      `json:"meeting_label,omitempty" jsonschema:"Letter label of the meeting point when the walkers met"`
	NearPath     []PathPoint `json:"near_path" jsonschema:"Per-round positions of the walker starting at the origin corner"`
	FarPath      []PathPoint `json:"far_path" jsonschema:"Per-round positions of the walker starting at the opposite corner"`
}

// PathPoint is one recorded position on a walker's path.
type PathPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AnalyzeInput defines the input for the gridmeet_analyze tool.
type AnalyzeInput struct {
	N       int    `json:"n" jsonschema:"Grid size (number of points per side; must be >= 1)"`
	Trials  int    `json:"trials" jsonschema:"Number of independent trials to run (must be >= 1)"`
	Workers int    `json:"workers,omitempty" jsonschema:"Number of parallel workers (0 or omitted selects one per CPU)"`
	Seed    uint64 `json:"seed,omitempty" jsonschema:"Base seed for reproducible runs (0 or omitted draws a random seed)"`
}

// AnalyzeOutput defines the output for the gridmeet_analyze tool.
type AnalyzeOutput struct {
	N                    int          `json:"n" jsonschema:"Grid size used"`
	Trials               int          `json:"trials" jsonschema:"Number of trials run"`
	Meetings             int          `json:"meetings" jsonschema:"Number of trials in which the walkers met"`
	EmpiricalProbability float64      `json:"empirical_probability" jsonschema:"Observed meeting frequency"`
	ExactProbability     float64      `json:"exact_probability" jsonschema:"Exact meeting probability C(2n-2,n-1)/4^(n-1)"`
	UniformModel         float64      `json:"uniform_model" jsonschema:"Uniform-meeting-point estimate 1/n"`
	Distribution         []PointStats `json:"distribution" jsonschema:"Per-meeting-point statistics along the anti-diagonal"`
}

// PointStats summarizes one meeting point in an analysis run.
type PointStats struct {
	Label                  string  `json:"label"`
	X                      int     `json:"x"`
	Y                      int     `json:"y"`
	Count                  int     `json:"count"`
	EmpiricalProbability   float64 `json:"empirical_probability"`
	TheoreticalProbability float64 `json:"theoretical_probability"`
}

// TheoryInput defines the input for the gridmeet_theory tool.
type TheoryInput struct {
	N int `json:"n" jsonschema:"Grid size (number of points per side; must be >= 1)"`
}

// TheoryOutput defines the output for the gridmeet_theory tool.
type TheoryOutput struct {
	N                int       `json:"n" jsonschema:"Grid size used"`
	UniformModel     float64   `json:"uniform_model" jsonschema:"Uniform-meeting-point estimate 1/n"`
	ExactProbability float64   `json:"exact_probability" jsonschema:"Exact meeting probability C(2n-2,n-1)/4^(n-1)"`
	PointWeights     []float64 `json:"point_weights" jsonschema:"Probability of meeting at each anti-diagonal point, indexed by x"`
}
