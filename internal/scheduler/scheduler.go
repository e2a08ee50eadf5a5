package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StorePulse/internal/pacer"
)

// Scheduler drives autonomous pacing ticks on a cron expression, so the
// bot paces itself without an external trigger. Manual /run requests and
// cron ticks share the pacer's serialization.
type Scheduler struct {
	Cron  *cron.Cron
	Pacer *pacer.Pacer
	Ctx   context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p *pacer.Pacer) *Scheduler {
	return &Scheduler{
		Cron:  cron.New(cron.WithSeconds()),
		Pacer: p,
		Ctx:   ctx,
	}
}

// Register adds the pacing tick job. The expression decides how often a
// tick fires; the pacer itself decides whether the hour is workable.
func (s *Scheduler) Register(tickCron string) error {
	if _, err := s.Cron.AddFunc(tickCron, s.tick); err != nil {
		return fmt.Errorf("register pacing tick: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one tick immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.tick()
}

func (s *Scheduler) tick() {
	st := s.Pacer.Run(s.Ctx)
	log.Printf("[INFO] tick: %s", st.Summary())
}
