package slot

import (
	"fmt"
	"sort"

	"StorePulse/internal/model"
)

// Partition is an ordered set of disjoint half-open hour intervals, each
// carrying its fraction of the daily revenue target. The fractions are
// independent caps and are not required to sum to 1.
type Partition struct {
	slots []model.Slot
}

// NewPartition validates that the intervals do not overlap and returns
// them sorted by start hour.
func NewPartition(slots []model.Slot) (*Partition, error) {
	sorted := make([]model.Slot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartHour < sorted[j].StartHour })

	for i, s := range sorted {
		if s.StartHour >= s.EndHour {
			return nil, fmt.Errorf("slot [%d,%d) is empty", s.StartHour, s.EndHour)
		}
		if i > 0 && s.StartHour < sorted[i-1].EndHour {
			return nil, fmt.Errorf("slot [%d,%d) overlaps [%d,%d)",
				s.StartHour, s.EndHour, sorted[i-1].StartHour, sorted[i-1].EndHour)
		}
	}
	return &Partition{slots: sorted}, nil
}

// SlotFor returns the slot containing the hour, or false when the hour
// falls outside every interval. Intervals are half-open: the boundary
// hour end belongs to the next interval, never to the one ending there.
func (p *Partition) SlotFor(hour int) (model.Slot, bool) {
	for _, s := range p.slots {
		if s.Contains(hour) {
			return s, true
		}
	}
	return model.Slot{}, false
}
