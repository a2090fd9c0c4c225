package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nvandessel/gridmeet/internal/analysis"
	"github.com/nvandessel/gridmeet/internal/grid"
	"github.com/nvandessel/gridmeet/internal/ratelimit"
	"github.com/nvandessel/gridmeet/internal/walk"
)

// registerTools registers all gridmeet MCP tools with the server.
func (s *Server) registerTools() error {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "gridmeet_trial",
		Description: "Run a single random-walk trial on an n by n grid and return both walker paths",
	}, s.handleTrial)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "gridmeet_analyze",
		Description: "Run many trials and return the meeting frequency and per-point distribution",
	}, s.handleAnalyze)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "gridmeet_theory",
		Description: "Return the theoretical meeting probabilities for an n by n grid without running trials",
	}, s.handleTheory)

	return nil
}

// handleTrial implements the gridmeet_trial tool.
func (s *Server) handleTrial(ctx context.Context, req *sdk.CallToolRequest, args TrialInput) (*sdk.CallToolResult, TrialOutput, error) {
	if err := ratelimit.CheckLimit(s.toolLimiters, "gridmeet_trial"); err != nil {
		return nil, TrialOutput{}, err
	}

	src := walk.NewRandomCoinSource()
	if args.Seed != 0 {
		src = walk.NewCoinSource(args.Seed)
	}

	result, err := walk.RunTrial(args.N, src)
	if err != nil {
		return nil, TrialOutput{}, fmt.Errorf("run trial: %w", err)
	}

	out := TrialOutput{
		N:        result.N,
		Met:      result.Met,
		Steps:    result.StepsTaken,
		NearPath: toPathPoints(result.NearPath),
		FarPath:  toPathPoints(result.FarPath),
	}
	if idx := result.MeetingIndex(); idx >= 0 {
		out.MeetingLabel = grid.PointLabel(idx)
	}

	return nil, out, nil
}

// handleAnalyze implements the gridmeet_analyze tool.
func (s *Server) handleAnalyze(ctx context.Context, req *sdk.CallToolRequest, args AnalyzeInput) (*sdk.CallToolResult, AnalyzeOutput, error) {
	if err := ratelimit.CheckLimit(s.toolLimiters, "gridmeet_analyze"); err != nil {
		return nil, AnalyzeOutput{}, err
	}

	result, err := analysis.Run(ctx, analysis.Params{
		N:       args.N,
		Trials:  args.Trials,
		Workers: args.Workers,
		Seed:    args.Seed,
	})
	if err != nil {
		return nil, AnalyzeOutput{}, fmt.Errorf("run analysis: %w", err)
	}

	out := AnalyzeOutput{
		N:                    result.N,
		Trials:               result.TrialCount,
		Meetings:             result.MeetingCount,
		EmpiricalProbability: result.EmpiricalProbability(),
		ExactProbability:     analysis.ExactMeetingProbability(result.N),
		UniformModel:         analysis.TheoreticalProbability(result.N),
	}

	for i, p := range grid.MeetingPoints(result.N) {
		out.Distribution = append(out.Distribution, PointStats{
			Label:                  grid.PointLabel(i),
			X:                      p.X,
			Y:                      p.Y,
			Count:                  result.PerPointCounts[i],
			EmpiricalProbability:   result.PointProbability(i),
			TheoreticalProbability: analysis.TheoreticalPointProbability(result.N, i),
		})
	}

	return nil, out, nil
}

// handleTheory implements the gridmeet_theory tool.
func (s *Server) handleTheory(ctx context.Context, req *sdk.CallToolRequest, args TheoryInput) (*sdk.CallToolResult, TheoryOutput, error) {
	if err := ratelimit.CheckLimit(s.toolLimiters, "gridmeet_theory"); err != nil {
		return nil, TheoryOutput{}, err
	}

	if args.N < 1 {
		return nil, TheoryOutput{}, fmt.Errorf("theory: %w: n must be >= 1, got %d", walk.ErrInvalidParameter, args.N)
	}

	weights := make([]float64, args.N)
	for i := range weights {
		weights[i] = analysis.TheoreticalPointProbability(args.N, i)
	}

	return nil, TheoryOutput{
		N:                args.N,
		UniformModel:     analysis.TheoreticalProbability(args.N),
		ExactProbability: analysis.ExactMeetingProbability(args.N),
		PointWeights:     weights,
	}, nil
}

func toPathPoints(path []grid.Position) []PathPoint {
	points := make([]PathPoint, len(path))
	for i, p := range path {
		points[i] = PathPoint{X: p.X, Y: p.Y}
	}
	return points
}
