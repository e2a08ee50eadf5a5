package traffic

import (
	"math/rand"
	"testing"

	"StorePulse/internal/model"
)

func TestVisit_AlwaysCountsVisit(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)), 0.25, 0.45)
	state := &model.DailyState{}
	for i := 0; i < 50; i++ {
		sim.Visit(state)
	}
	if state.VisitCount != 50 {
		t.Fatalf("expected 50 visits, got %d", state.VisitCount)
	}
	if state.CartAddCount > state.VisitCount {
		t.Fatalf("cart adds (%d) cannot exceed visits (%d)", state.CartAddCount, state.VisitCount)
	}
}

func TestVisit_CartAddCertainAtProbOne(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)), 1, 1)
	state := &model.DailyState{}
	for i := 0; i < 20; i++ {
		sim.Visit(state)
	}
	if state.CartAddCount != 20 {
		t.Fatalf("expected 20 cart adds at p=1, got %d", state.CartAddCount)
	}
}

func TestVisit_NoCartAddAtProbZero(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)), 0, 0)
	state := &model.DailyState{}
	for i := 0; i < 20; i++ {
		sim.Visit(state)
	}
	if state.CartAddCount != 0 {
		t.Fatalf("expected no cart adds at p=0, got %d", state.CartAddCount)
	}
}
