package store

import (
	"os"
	"path/filepath"
	"testing"

	"StorePulse/internal/model"
)

func TestFileStore_MissingFileYieldsZeroState(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, err := fs.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Date != "" || state.VisitCount != 0 || state.RunningRevenue != 0 {
		t.Fatalf("expected zero state, got %+v", state)
	}
}

func TestFileStore_MalformedFileYieldsZeroState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, err := fs.Load()
	if err != nil {
		t.Fatalf("corrupt file must not fail the load: %v", err)
	}
	if state.Date != "" {
		t.Fatalf("expected zero state, got %+v", state)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := &model.DailyState{
		Date:           "2024-05-01",
		TargetRevenue:  3200,
		RunningRevenue: 149.85,
		VisitCount:     12,
		CartAddCount:   5,
		OrderCount:     2,
	}
	if err := fs.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Date != in.Date || out.TargetRevenue != in.TargetRevenue ||
		out.RunningRevenue != in.RunningRevenue || out.VisitCount != in.VisitCount ||
		out.CartAddCount != in.CartAddCount || out.OrderCount != in.OrderCount {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestResetIfNewDay_FreshDay(t *testing.T) {
	ms := NewMemoryStore()
	draws := 0
	state, err := ResetIfNewDay(ms, &model.DailyState{}, "2024-05-01", func() float64 {
		draws++
		return 3000
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Date != "2024-05-01" || state.TargetRevenue != 3000 {
		t.Fatalf("unexpected fresh state: %+v", state)
	}
	if state.RunningRevenue != 0 || state.VisitCount != 0 || state.OrderCount != 0 {
		t.Fatalf("counters not zeroed: %+v", state)
	}
	if draws != 1 {
		t.Fatalf("target drawn %d times, want 1", draws)
	}
	if ms.SaveCount != 1 {
		t.Fatalf("rollover must persist immediately, saves=%d", ms.SaveCount)
	}
}

func TestResetIfNewDay_SameDayIsNoOp(t *testing.T) {
	ms := NewMemoryStore()
	state, err := ResetIfNewDay(ms, &model.DailyState{}, "2024-05-01", func() float64 { return 2750 })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second call on an already-current-day state changes nothing and
	// writes nothing.
	again, err := ResetIfNewDay(ms, state, "2024-05-01", func() float64 {
		t.Fatal("target must not be redrawn mid-day")
		return 0
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != state {
		t.Fatal("same-day reset should return the state unchanged")
	}
	if ms.SaveCount != 1 {
		t.Fatalf("same-day reset must not write, saves=%d", ms.SaveCount)
	}
}

func TestResetIfNewDay_RollsOverStaleDate(t *testing.T) {
	ms := NewMemoryStore()
	stale := &model.DailyState{
		Date:           "2024-04-30",
		TargetRevenue:  4100,
		RunningRevenue: 4100,
		VisitCount:     88,
		OrderCount:     30,
	}
	state, err := ResetIfNewDay(ms, stale, "2024-05-01", func() float64 { return 2600 })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Date != "2024-05-01" || state.TargetRevenue != 2600 {
		t.Fatalf("unexpected state after rollover: %+v", state)
	}
	if state.RunningRevenue != 0 || state.VisitCount != 0 || state.OrderCount != 0 {
		t.Fatalf("rollover must zero the counters: %+v", state)
	}
}
