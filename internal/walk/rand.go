package walk

import "math/rand/v2"

// CoinSource produces independent fair binary draws. Implementations are
// not required to be safe for concurrent use; give each trial (or each
// worker goroutine) its own source.
type CoinSource interface {
	// Flip returns true or false with probability 0.5 each.
	Flip() bool
}

// pcgCoin adapts a seeded PCG generator to the CoinSource interface.
type pcgCoin struct {
	r *rand.Rand
}

func (c *pcgCoin) Flip() bool {
	return c.r.Uint64()&1 == 1
}

// NewCoinSource returns a CoinSource backed by a PCG generator seeded with
// seed. Equal seeds give identical flip sequences; distinct seeds give
// independent streams. Not safe for concurrent use.
func NewCoinSource(seed uint64) CoinSource {
	return &pcgCoin{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomCoinSource returns a CoinSource seeded from the process
// entropy pool. Not safe for concurrent use.
func NewRandomCoinSource() CoinSource {
	return NewCoinSource(rand.Uint64())
}

// Script is a CoinSource that replays a fixed flip sequence, for
// deterministic tests. Flipping past the end of the sequence panics.
type Script struct {
	flips []bool
	next  int
}

// NewScript returns a Script that yields the given flips in order.
func NewScript(flips ...bool) *Script {
	return &Script{flips: flips}
}

// Flip returns the next scripted draw.
func (s *Script) Flip() bool {
	if s.next >= len(s.flips) {
		panic("walk: scripted coin source exhausted")
	}
	f := s.flips[s.next]
	s.next++
	return f
}
