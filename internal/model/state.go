package model

import "time"

// DateLayout is the calendar-date format used to key the daily state.
const DateLayout = "2006-01-02"

// DailyState is the single persisted counter record for one calendar day.
// All counters reset, and the target is redrawn, exactly when the stored
// date no longer matches the current day.
type DailyState struct {
	Date           string    `json:"date"`
	TargetRevenue  float64   `json:"target_revenue"`
	RunningRevenue float64   `json:"running_revenue"`
	VisitCount     int       `json:"visit_count"`
	CartAddCount   int       `json:"cart_add_count"`
	OrderCount     int       `json:"order_count"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TargetReached reports whether the day's revenue goal has been met.
func (s *DailyState) TargetReached() bool {
	return s.TargetRevenue > 0 && s.RunningRevenue >= s.TargetRevenue
}
