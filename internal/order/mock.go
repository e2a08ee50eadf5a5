package order

import (
	"context"
	"errors"

	"StorePulse/internal/model"
)

// MockSubmitter returns controllable results for development and testing.
type MockSubmitter struct {
	Fail      bool
	Submitted []model.SyntheticOrder
}

func (m *MockSubmitter) Submit(_ context.Context, o model.SyntheticOrder) (*model.OrderAck, error) {
	m.Submitted = append(m.Submitted, o)
	if m.Fail {
		return nil, errors.New("mock submit failure")
	}
	return &model.OrderAck{OrderID: int64(len(m.Submitted))}, nil
}
