package model

import "fmt"

// Outcome classifies what a single pacing tick did.
type Outcome string

const (
	// OutcomeBeforeHours means the tick arrived outside the operating window.
	OutcomeBeforeHours Outcome = "before_hours"
	// OutcomeTargetReached means the day's revenue goal is already met.
	OutcomeTargetReached Outcome = "target_reached"
	// OutcomeNoSlot means the hour falls in no configured slot.
	OutcomeNoSlot Outcome = "no_slot"
	// OutcomePaced means traffic was simulated but no conversion happened.
	OutcomePaced Outcome = "paced"
	// OutcomeConverted means an order was submitted and accepted.
	OutcomeConverted Outcome = "converted"
	// OutcomeSkipped means a conversion was due but gated off
	// (missing storefront credentials).
	OutcomeSkipped Outcome = "skipped"
)

// Status is the summary returned to whoever triggered a pacing tick.
type Status struct {
	Outcome        Outcome
	Date           string
	VisitCount     int
	CartAddCount   int
	OrderCount     int
	RunningRevenue float64
	TargetRevenue  float64
}

// Summary renders the one-line operator-facing status string.
func (s Status) Summary() string {
	return fmt.Sprintf("%s | visits=%d cart_adds=%d orders=%d | revenue %.2f / %.2f | %s",
		s.Date, s.VisitCount, s.CartAddCount, s.OrderCount,
		s.RunningRevenue, s.TargetRevenue, s.Outcome)
}

// StatusFrom builds a Status snapshot for a state and outcome.
func StatusFrom(outcome Outcome, state *DailyState) Status {
	return Status{
		Outcome:        outcome,
		Date:           state.Date,
		VisitCount:     state.VisitCount,
		CartAddCount:   state.CartAddCount,
		OrderCount:     state.OrderCount,
		RunningRevenue: state.RunningRevenue,
		TargetRevenue:  state.TargetRevenue,
	}
}
