package store

import (
	"StorePulse/internal/model"
)

// Store persists the single daily counter record. Load returns a
// zero-valued state when no usable record exists; implementations never
// fail a pacing tick over an unreadable record.
type Store interface {
	Load() (*model.DailyState, error)
	Save(state *model.DailyState) error
}

// ResetIfNewDay returns state unchanged when its date already matches
// today. Otherwise it builds a fresh state for today with a newly drawn
// revenue target, persists it immediately so the rollover is observable,
// and returns it. drawTarget is only invoked when a rollover happens, so
// the target stays fixed for the rest of the day.
func ResetIfNewDay(s Store, state *model.DailyState, today string, drawTarget func() float64) (*model.DailyState, error) {
	if state.Date == today {
		return state, nil
	}
	fresh := &model.DailyState{
		Date:          today,
		TargetRevenue: drawTarget(),
	}
	if err := s.Save(fresh); err != nil {
		return fresh, err
	}
	return fresh, nil
}
