package pacer

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"StorePulse/internal/clock"
	"StorePulse/internal/config"
	"StorePulse/internal/model"
	"StorePulse/internal/order"
	"StorePulse/internal/recorder"
	"StorePulse/internal/slot"
	"StorePulse/internal/store"
	"StorePulse/internal/traffic"
)

// Pacer runs one pacing tick at a time: load state, roll the day over if
// needed, simulate traffic, and decide whether to convert. The mutex
// serializes the load-modify-save sequence, so concurrent triggers (cron
// tick racing a manual /run) cannot lose an update.
type Pacer struct {
	mu        sync.Mutex
	cfg       *config.Config
	store     store.Store
	clock     clock.Clock
	slots     *slot.Partition
	traffic   *traffic.Simulator
	synth     *order.Synthesizer
	submitter order.Submitter // nil when storefront credentials are missing
	rec       recorder.Recorder
	rng       *rand.Rand
}

// New wires the pacer. A nil submitter is allowed: the pacer keeps
// simulating traffic but skips every conversion instead of submitting
// malformed requests.
func New(cfg *config.Config, st store.Store, clk clock.Clock, slots *slot.Partition,
	sim *traffic.Simulator, synth *order.Synthesizer, submitter order.Submitter,
	rec recorder.Recorder, rng *rand.Rand) *Pacer {
	return &Pacer{
		cfg:       cfg,
		store:     st,
		clock:     clk,
		slots:     slots,
		traffic:   sim,
		synth:     synth,
		submitter: submitter,
		rec:       rec,
		rng:       rng,
	}
}

// Run executes one pacing tick and returns the status summary.
func (p *Pacer) Run(ctx context.Context) model.Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	hour := now.Hour()

	state, err := p.store.Load()
	if err != nil {
		log.Printf("[WARN] load state: %v, starting fresh", err)
		state = &model.DailyState{}
	}

	// Outside the operating window nothing runs and nothing is written.
	if hour < p.cfg.Market.OpenHour || hour >= p.cfg.Market.CloseHour {
		return model.StatusFrom(model.OutcomeBeforeHours, state)
	}

	state = p.rollover(state, now)

	if state.TargetReached() {
		return model.StatusFrom(model.OutcomeTargetReached, state)
	}

	sl, ok := p.slots.SlotFor(hour)
	if !ok {
		return model.StatusFrom(model.OutcomeNoSlot, state)
	}

	p.traffic.Visit(state)

	// The cap is computed against cumulative revenue for the day, not
	// per-slot spend. Out-of-order invocations (clock skew) can therefore
	// see an early slot already capped by later spend; that is accepted.
	slotCap := state.TargetRevenue * sl.TargetFraction
	outcome := model.OutcomePaced
	if state.RunningRevenue < slotCap && p.drawConversion() {
		outcome = p.convert(ctx, state)
	}

	if err := p.store.Save(state); err != nil {
		log.Printf("[ERROR] save state: %v", err)
	}

	if err := p.rec.RecordTick(&recorder.TickEvent{
		Outcome:        outcome,
		Hour:           hour,
		SlotStart:      sl.StartHour,
		SlotEnd:        sl.EndHour,
		SlotCap:        slotCap,
		VisitCount:     state.VisitCount,
		CartAddCount:   state.CartAddCount,
		OrderCount:     state.OrderCount,
		RunningRevenue: state.RunningRevenue,
		TargetRevenue:  state.TargetRevenue,
	}); err != nil {
		log.Printf("[ERROR] record tick: %v", err)
	}

	return model.StatusFrom(outcome, state)
}

// Status reports the current state and its classification without
// mutating or persisting anything.
func (p *Pacer) Status() model.Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, err := p.store.Load()
	if err != nil {
		state = &model.DailyState{}
	}

	hour := p.clock.Now().Hour()
	outcome := model.OutcomePaced
	switch {
	case hour < p.cfg.Market.OpenHour || hour >= p.cfg.Market.CloseHour:
		outcome = model.OutcomeBeforeHours
	case state.TargetReached():
		outcome = model.OutcomeTargetReached
	default:
		if _, ok := p.slots.SlotFor(hour); !ok {
			outcome = model.OutcomeNoSlot
		}
	}
	return model.StatusFrom(outcome, state)
}

// rollover resets the state when the stored date differs from today. The
// fresh target is drawn once here and stays fixed for the day.
func (p *Pacer) rollover(state *model.DailyState, now time.Time) *model.DailyState {
	today := now.Format(model.DateLayout)
	if state.Date == today {
		return state
	}

	prev := *state
	fresh, err := store.ResetIfNewDay(p.store, state, today, p.drawTarget)
	if err != nil {
		log.Printf("[ERROR] persist day rollover: %v", err)
	}
	log.Printf("[INFO] day rollover: %s target=%.2f (prev %s revenue=%.2f orders=%d)",
		fresh.Date, fresh.TargetRevenue, prev.Date, prev.RunningRevenue, prev.OrderCount)

	if err := p.rec.RecordRollover(&recorder.RolloverEvent{
		Date:          fresh.Date,
		TargetRevenue: fresh.TargetRevenue,
		PrevDate:      prev.Date,
		PrevRevenue:   prev.RunningRevenue,
		PrevOrders:    prev.OrderCount,
	}); err != nil {
		log.Printf("[ERROR] record rollover: %v", err)
	}
	return fresh
}

// drawTarget picks the day's revenue goal uniformly from the configured
// inclusive range.
func (p *Pacer) drawTarget() float64 {
	span := p.cfg.Revenue.MaxDaily - p.cfg.Revenue.MinDaily
	return float64(p.cfg.Revenue.MinDaily + p.rng.Intn(span+1))
}

// drawConversion re-samples the conversion probability from the configured
// range on every call, then rolls against it. Two draws per tick keeps the
// order sequence from looking mechanical.
func (p *Pacer) drawConversion() bool {
	t := p.cfg.Traffic
	prob := t.ConvertProbMin + p.rng.Float64()*(t.ConvertProbMax-t.ConvertProbMin)
	return p.rng.Float64() < prob
}

// convert synthesizes and submits one order. Any failure realizes zero
// revenue; the visit and cart-add counters from this tick survive either
// way.
func (p *Pacer) convert(ctx context.Context, state *model.DailyState) model.Outcome {
	if p.submitter == nil {
		log.Println("[WARN] conversion due but storefront credentials are missing, skipping")
		return model.OutcomeSkipped
	}

	o := p.synth.Build()
	timeout := time.Duration(p.cfg.Storefront.SubmitTimeoutSeconds) * time.Second
	subCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ack, err := p.submitter.Submit(subCtx, o)
	evt := &recorder.OrderEvent{
		BuyerHandle: o.BuyerHandle,
		Reference:   o.Reference,
		UnitCount:   o.UnitCount,
		Amount:      o.Amount,
	}
	if err != nil {
		log.Printf("[ERROR] order %s (%d units) rejected: %v", o.BuyerHandle, o.UnitCount, err)
		evt.Note = err.Error()
		if recErr := p.rec.RecordOrder(evt); recErr != nil {
			log.Printf("[ERROR] record order: %v", recErr)
		}
		return model.OutcomePaced
	}

	state.RunningRevenue += o.Amount
	state.OrderCount++
	log.Printf("[INFO] order %s (%d units) = %.2f accepted, id=%d",
		o.BuyerHandle, o.UnitCount, o.Amount, ack.OrderID)

	evt.Accepted = true
	evt.Note = fmt.Sprintf("order_id=%d", ack.OrderID)
	if recErr := p.rec.RecordOrder(evt); recErr != nil {
		log.Printf("[ERROR] record order: %v", recErr)
	}
	return model.OutcomeConverted
}
