package model

// Slot is one hour-of-day interval with its share of the daily target.
// The interval is half-open: an hour h belongs to the slot when
// StartHour <= h < EndHour.
type Slot struct {
	StartHour      int     `yaml:"start_hour"`
	EndHour        int     `yaml:"end_hour"`
	TargetFraction float64 `yaml:"target_fraction"`
}

// Contains reports whether the hour falls inside the slot's interval.
func (s Slot) Contains(hour int) bool {
	return hour >= s.StartHour && hour < s.EndHour
}
