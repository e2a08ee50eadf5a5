package traffic

import (
	"math/rand"

	"StorePulse/internal/model"
)

// Simulator records synthetic visits and cart-adds on the daily state.
// The cart-add probability is re-sampled from a configured range on every
// call, so the traffic never settles into a detectable fixed conversion
// rate. Pure function of the state plus the injected random source.
type Simulator struct {
	rng              *rand.Rand
	probMin, probMax float64
}

// NewSimulator takes a seedable random source so tests can pin branch
// outcomes exactly.
func NewSimulator(rng *rand.Rand, probMin, probMax float64) *Simulator {
	return &Simulator{rng: rng, probMin: probMin, probMax: probMax}
}

// Visit always counts one visit, and independently counts a cart-add
// with a freshly drawn probability.
func (s *Simulator) Visit(state *model.DailyState) {
	state.VisitCount++
	p := s.probMin + s.rng.Float64()*(s.probMax-s.probMin)
	if s.rng.Float64() < p {
		state.CartAddCount++
	}
}
