package order

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"StorePulse/internal/model"
)

// firstNames feeds synthetic buyer handles for the French target market.
var firstNames = []string{
	"camille", "lucas", "emma", "lea", "hugo", "chloe", "louis", "manon",
	"jules", "ines", "nathan", "jade", "gabriel", "zoe", "arthur", "lina",
	"raphael", "eva", "paul", "nora", "theo", "alice", "adam", "juliette",
	"tom", "clara", "maxime", "margaux", "antoine", "elise",
}

var unitCounts = []int{1, 2, 3}

// Synthesizer builds ephemeral synthetic orders at the fixed catalog price.
type Synthesizer struct {
	rng       *rand.Rand
	unitPrice float64
}

func NewSynthesizer(rng *rand.Rand, unitPrice float64) *Synthesizer {
	return &Synthesizer{rng: rng, unitPrice: unitPrice}
}

// Build draws a fresh buyer handle and unit count. The uuid reference lets
// a storefront-side dedupe layer drop accidental replays.
func (s *Synthesizer) Build() model.SyntheticOrder {
	name := firstNames[s.rng.Intn(len(firstNames))]
	count := unitCounts[s.rng.Intn(len(unitCounts))]
	return model.SyntheticOrder{
		BuyerHandle: fmt.Sprintf("%s%d@gmail.com", name, 100+s.rng.Intn(900)),
		UnitCount:   count,
		UnitPrice:   s.unitPrice,
		Amount:      float64(count) * s.unitPrice,
		Reference:   uuid.NewString(),
	}
}
