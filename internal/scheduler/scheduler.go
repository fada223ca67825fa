// Package scheduler wires up the cron job that periodically runs the
// ingestion worker against all configured job boards.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/b1aiirrr/KaziLink/internal/scraper"
)

// Scheduler wraps robfig/cron and manages the ingestion loop.
type Scheduler struct {
	cron   *cron.Cron
	worker *scraper.Worker
	spec   string
}

// New creates a Scheduler that fires every intervalHours hours.
func New(worker *scraper.Worker, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(cron.DefaultLogger)),
		worker: worker,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Spec returns the cron spec the scheduler fires on.
func (s *Scheduler) Spec() string { return s.spec }

// Start registers the job and starts the scheduler. Also runs one ingestion
// cycle immediately so the listings are populated without waiting for the
// first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.worker.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	go s.worker.Run(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}
