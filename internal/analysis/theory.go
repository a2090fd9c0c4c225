package analysis

import (
	"math"
	"math/big"
)

// TheoreticalProbability returns the uniform-model meeting probability for
// an n×n grid, 1/n: the value obtained by assuming all n anti-diagonal
// meeting points are equally likely. This is the figure the analysis
// surfaces report alongside the empirical estimate. Returns 0 for n < 1.
//
// The uniform assumption holds only for n <= 2; the distribution over
// meeting points is binomial-squared, so the probability the sampler
// actually converges to is ExactMeetingProbability.
func TheoreticalProbability(n int) float64 {
	if n < 1 {
		return 0
	}
	return 1.0 / float64(n)
}

// TheoreticalProbabilityRat returns 1/n as an exact rational, or nil for
// n < 1. Used by tests that must not tolerate floating error.
func TheoreticalProbabilityRat(n int) *big.Rat {
	if n < 1 {
		return nil
	}
	return big.NewRat(1, int64(n))
}

// TheoreticalPointProbability returns the probability that both walkers
// meet at anti-diagonal point i on an n×n grid. Each walker reaches point
// i with probability C(n-1,i)·(1/2)^(n-1) independently, so the joint
// probability is C(n-1,i)² / 4^(n-1). Computed in log space so large n
// does not overflow the binomial coefficients. Returns 0 for i outside
// 0..n-1.
func TheoreticalPointProbability(n, i int) float64 {
	if n < 1 || i < 0 || i >= n {
		return 0
	}
	m := n - 1
	logC := logGamma(m+1) - logGamma(i+1) - logGamma(m-i+1)
	return math.Exp(2*logC - float64(2*m)*math.Ln2)
}

// ExactMeetingProbability returns the exact probability that the walkers
// meet on an n×n grid: the sum of TheoreticalPointProbability over all
// points, which by the Vandermonde identity Σ C(n-1,i)² = C(2n-2,n-1)
// equals C(2n-2,n-1) / 4^(n-1). This is the value the empirical estimate
// converges to. Returns 0 for n < 1.
func ExactMeetingProbability(n int) float64 {
	if n < 1 {
		return 0
	}
	m := n - 1
	logC := logGamma(2*m+1) - 2*logGamma(m+1)
	return math.Exp(logC - float64(2*m)*math.Ln2)
}

// logGamma returns ln(Γ(x)) = ln((x-1)!) for integer x >= 1.
func logGamma(x int) float64 {
	lg, _ := math.Lgamma(float64(x))
	return lg
}
