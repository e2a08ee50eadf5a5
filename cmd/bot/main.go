package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StorePulse/internal/clock"
	"StorePulse/internal/config"
	"StorePulse/internal/order"
	"StorePulse/internal/pacer"
	"StorePulse/internal/recorder"
	"StorePulse/internal/scheduler"
	"StorePulse/internal/server"
	"StorePulse/internal/slot"
	"StorePulse/internal/store"
	"StorePulse/internal/traffic"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StorePulse starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Market clock
	clk, err := clock.NewMarketClock(cfg.Market.Timezone)
	if err != nil {
		log.Fatalf("[FATAL] init clock: %v", err)
	}

	// Slot partition
	slots, err := slot.NewPartition(cfg.Slots)
	if err != nil {
		log.Fatalf("[FATAL] slot partition: %v", err)
	}

	// Daily state store
	st, err := store.NewFileStore(cfg.Pacing.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init state store: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	sim := traffic.NewSimulator(rng, cfg.Traffic.CartAddProbMin, cfg.Traffic.CartAddProbMax)
	synth := order.NewSynthesizer(rng, cfg.Storefront.UnitPrice)

	// Storefront client, only when fully configured. Without credentials
	// the pacer still paces traffic but skips conversions.
	var submitter order.Submitter
	if cfg.HasCredentials() {
		submitter = order.NewClient(
			cfg.Storefront.StoreURL,
			cfg.Storefront.APIKey,
			cfg.Storefront.Password,
			cfg.Storefront.VariantID,
			time.Duration(cfg.Storefront.SubmitTimeoutSeconds)*time.Second,
			cfg.Storefront.MaxOrdersPerMinute,
		)
		log.Printf("[INFO] storefront client ready: %s", cfg.Storefront.StoreURL)
	} else {
		log.Println("[WARN] storefront credentials missing, conversions disabled")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	p := pacer.New(cfg, st, clk, slots, sim, synth, submitter, rec, rng)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, p)
	if err := sched.Register(cfg.Pacing.TickCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// HTTP trigger endpoints
	srv := server.New(p, cfg.Server.Port)
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("[ERROR] %v", err)
		}
	}()

	// Optional: run one tick immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing pacing tick now")
		go sched.RunNow()
	}

	log.Println("[INFO] StorePulse is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	cancel()
	log.Println("[INFO] StorePulse stopped")
}
