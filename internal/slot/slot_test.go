package slot

import (
	"testing"

	"StorePulse/internal/model"
)

func TestSlotFor_HalfOpenBoundary(t *testing.T) {
	p, err := NewPartition([]model.Slot{
		{StartHour: 8, EndHour: 10, TargetFraction: 0.05},
		{StartHour: 10, EndHour: 14, TargetFraction: 0.30},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, ok := p.SlotFor(9)
	if !ok || s.StartHour != 8 {
		t.Fatalf("hour 9 should be in [8,10), got %+v ok=%v", s, ok)
	}

	// The boundary hour belongs to the next interval, never the one ending there.
	s, ok = p.SlotFor(10)
	if !ok || s.StartHour != 10 {
		t.Fatalf("hour 10 should be in [10,14), got %+v ok=%v", s, ok)
	}

	if _, ok := p.SlotFor(14); ok {
		t.Fatal("hour 14 ends the last interval and should match nothing")
	}
}

func TestSlotFor_GapReturnsNone(t *testing.T) {
	p, err := NewPartition([]model.Slot{
		{StartHour: 8, EndHour: 10, TargetFraction: 0.2},
		{StartHour: 12, EndHour: 14, TargetFraction: 0.2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.SlotFor(11); ok {
		t.Fatal("hour 11 falls in the gap and should match nothing")
	}
}

func TestNewPartition_RejectsOverlap(t *testing.T) {
	_, err := NewPartition([]model.Slot{
		{StartHour: 8, EndHour: 12, TargetFraction: 0.2},
		{StartHour: 11, EndHour: 14, TargetFraction: 0.2},
	})
	if err == nil {
		t.Fatal("expected error for overlapping slots")
	}
}

func TestNewPartition_RejectsEmptyInterval(t *testing.T) {
	_, err := NewPartition([]model.Slot{
		{StartHour: 10, EndHour: 10, TargetFraction: 0.2},
	})
	if err == nil {
		t.Fatal("expected error for empty interval")
	}
}
