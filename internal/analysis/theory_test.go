package analysis

import (
	"math"
	"math/big"
	"testing"
)

func TestTheoreticalProbabilityRatExact(t *testing.T) {
	for n := 1; n <= 10; n++ {
		got := TheoreticalProbabilityRat(n)
		want := big.NewRat(1, int64(n))
		if got.Cmp(want) != 0 {
			t.Errorf("TheoreticalProbabilityRat(%d) = %v, want %v", n, got, want)
		}
	}
	if TheoreticalProbabilityRat(0) != nil {
		t.Error("TheoreticalProbabilityRat(0) should be nil")
	}
}

func TestTheoreticalProbabilityFloat(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{1, 1.0},
		{2, 0.5},
		{3, 1.0 / 3.0},
		{5, 0.2},
		{10, 0.1},
	}
	for _, tt := range tests {
		if got := TheoreticalProbability(tt.n); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("TheoreticalProbability(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
	if got := TheoreticalProbability(0); got != 0 {
		t.Errorf("TheoreticalProbability(0) = %v, want 0", got)
	}
}

func TestExactMeetingProbabilityKnownValues(t *testing.T) {
	// C(2n-2,n-1)/4^(n-1) for small n, hand-computed.
	tests := []struct {
		n    int
		want float64
	}{
		{1, 1.0},
		{2, 0.5},            // C(2,1)/4 = 2/4
		{3, 0.375},          // C(4,2)/16 = 6/16
		{4, 0.3125},         // C(6,3)/64 = 20/64
		{5, 70.0 / 256.0},   // C(8,4)/256
		{10, 48620.0 / 262144.0}, // C(18,9)/4^9
	}
	for _, tt := range tests {
		if got := ExactMeetingProbability(tt.n); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ExactMeetingProbability(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

// TestUniformModelCoincidesOnlyForTinyGrids documents the relationship
// between the two closed forms: the 1/n uniform-meeting-point model agrees
// with the exact binomial value at n=1 and n=2 and overestimates nothing
// beyond that (the exact value is strictly larger for n >= 3).
func TestUniformModelCoincidesOnlyForTinyGrids(t *testing.T) {
	for _, n := range []int{1, 2} {
		if math.Abs(TheoreticalProbability(n)-ExactMeetingProbability(n)) > 1e-12 {
			t.Errorf("n=%d: uniform model %v != exact %v", n,
				TheoreticalProbability(n), ExactMeetingProbability(n))
		}
	}
	for n := 3; n <= 20; n++ {
		if ExactMeetingProbability(n) <= TheoreticalProbability(n) {
			t.Errorf("n=%d: exact %v should exceed uniform model %v", n,
				ExactMeetingProbability(n), TheoreticalProbability(n))
		}
	}
}

// TestPointProbabilitiesSumToExact verifies the Vandermonde identity
// numerically: sum over i of C(n-1,i)²/4^(n-1) equals C(2n-2,n-1)/4^(n-1).
func TestPointProbabilitiesSumToExact(t *testing.T) {
	for n := 1; n <= 64; n++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += TheoreticalPointProbability(n, i)
		}
		want := ExactMeetingProbability(n)
		if math.Abs(sum-want) > 1e-9 {
			t.Errorf("n=%d: sum of point probabilities = %v, want %v", n, sum, want)
		}
	}
}

func TestPointProbabilitySymmetric(t *testing.T) {
	// C(n-1,i) = C(n-1,n-1-i), so the distribution over the anti-diagonal
	// is symmetric about its midpoint.
	for n := 2; n <= 12; n++ {
		for i := 0; i < n; i++ {
			a := TheoreticalPointProbability(n, i)
			b := TheoreticalPointProbability(n, n-1-i)
			if math.Abs(a-b) > 1e-12 {
				t.Errorf("n=%d: point %d (%v) and point %d (%v) not symmetric", n, i, a, n-1-i, b)
			}
		}
	}
}

func TestPointProbabilityEdges(t *testing.T) {
	if got := TheoreticalPointProbability(1, 0); got != 1.0 {
		t.Errorf("TheoreticalPointProbability(1, 0) = %v, want 1.0", got)
	}
	for _, i := range []int{-1, 5, 100} {
		if got := TheoreticalPointProbability(5, i); got != 0 {
			t.Errorf("TheoreticalPointProbability(5, %d) = %v, want 0", i, got)
		}
	}
	// Known values for n=3: corners need two same-axis flips from both
	// walkers, C(2,0)²/16 = 1/16; the middle point C(2,1)²/16 = 1/4.
	if got := TheoreticalPointProbability(3, 0); math.Abs(got-1.0/16.0) > 1e-12 {
		t.Errorf("TheoreticalPointProbability(3, 0) = %v, want 1/16", got)
	}
	if got := TheoreticalPointProbability(3, 1); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("TheoreticalPointProbability(3, 1) = %v, want 0.25", got)
	}
}

func TestNoOverflowAtLargeN(t *testing.T) {
	// Log-space evaluation must stay finite well past the range where
	// naive binomial coefficients overflow int64 (n ~ 35).
	for _, n := range []int{100, 500, 1000} {
		p := ExactMeetingProbability(n)
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 || p >= 1 {
			t.Errorf("ExactMeetingProbability(%d) = %v, want finite probability in (0,1)", n, p)
		}
	}
}
