package recorder

import "StorePulse/internal/model"

// TickEvent holds the result of one pacing tick.
type TickEvent struct {
	Outcome        model.Outcome
	Hour           int
	SlotStart      int
	SlotEnd        int
	SlotCap        float64
	VisitCount     int
	CartAddCount   int
	OrderCount     int
	RunningRevenue float64
	TargetRevenue  float64
}

// OrderEvent records a single submission attempt, accepted or not.
type OrderEvent struct {
	BuyerHandle string
	Reference   string
	UnitCount   int
	Amount      float64
	Accepted    bool
	Note        string
}

// RolloverEvent records a day transition: the closed-out day's totals and
// the fresh day's drawn target.
type RolloverEvent struct {
	Date          string
	TargetRevenue float64
	PrevDate      string
	PrevRevenue   float64
	PrevOrders    int
}

// Recorder persists historical pacing data for analysis. Failures here
// never affect the pacing loop itself.
type Recorder interface {
	RecordTick(evt *TickEvent) error
	RecordOrder(evt *OrderEvent) error
	RecordRollover(evt *RolloverEvent) error
	Close() error
}
