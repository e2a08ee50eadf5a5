package store

import "StorePulse/internal/model"

// MemoryStore holds the state in memory. Used in tests and as a harness
// for running the pacer without touching disk.
type MemoryStore struct {
	State     *model.DailyState
	SaveCount int
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load() (*model.DailyState, error) {
	if m.State == nil {
		return &model.DailyState{}, nil
	}
	cp := *m.State
	return &cp, nil
}

func (m *MemoryStore) Save(state *model.DailyState) error {
	cp := *state
	m.State = &cp
	m.SaveCount++
	return nil
}
