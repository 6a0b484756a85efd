// Package sweeper purges stale game sessions on a schedule. Sessions are
// durable until externally purged; this is that external purge.
package sweeper

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hearthfire/gamemaster/internal/stores/session"
	"github.com/robfig/cron/v3"
)

// Sweeper deletes sessions whose last update is older than the retention
// window, on a cron schedule.
type Sweeper struct {
	sessions  session.Store
	retention time.Duration
	cron      *cron.Cron
}

// New creates a sweeper with the given retention window and cron schedule
// (for example "@hourly").
func New(sessions session.Store, retention time.Duration, schedule string) (*Sweeper, error) {
	if retention <= 0 {
		return nil, fmt.Errorf("retention must be positive")
	}

	s := &Sweeper{
		sessions:  sessions,
		retention: retention,
		cron:      cron.New(),
	}

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins running sweeps on the configured schedule
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts scheduling; a sweep already in flight finishes on its own
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-s.retention)
	purged, err := s.sessions.DeleteStale(ctx, cutoff)
	if err != nil {
		log.Printf("[SWEEPER]: sweep failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("[SWEEPER]: purged %d stale sessions", purged)
	}
}
