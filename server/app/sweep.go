package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Sweeper is the safety net behind manual archival: on a fixed interval it
// archives every active article whose deadline has passed. It is a catch-up
// sweep, not a precise scheduler — after downtime the next pass still picks
// up whatever expired in between.
type Sweeper struct {
	registry   *Registry
	interval   time.Duration
	apiTimeout time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// SweeperOptions configure a Sweeper. Zero values fall back to the spec'd
// five-minute interval, a 15s per-article timeout and the wall clock.
type SweeperOptions struct {
	Interval   time.Duration
	APITimeout time.Duration
	Now        func() time.Time
}

// SweepResult is what one pass did, per article.
type SweepResult struct {
	Archived []string
	Failures map[string]error
}

func NewSweeper(registry *Registry, log zerolog.Logger, opts SweeperOptions) *Sweeper {
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Minute
	}
	if opts.APITimeout <= 0 {
		opts.APITimeout = 15 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Sweeper{
		registry:   registry,
		interval:   opts.Interval,
		apiTimeout: opts.APITimeout,
		log:        log,
		now:        opts.Now,
	}
}

// Run loops until ctx is cancelled. Passes run sequentially on this one
// goroutine, so a slow pass delays the next rather than overlapping it; a
// running pass always finishes, cancellation is only observed between them.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(context.Background())
		}
	}
}

// SweepOnce archives every due article. Each article's transition is
// independent and bounded by its own timeout: one failure or one stalled
// API call never aborts the rest of the pass. Failed articles stay Active
// and are retried naturally on the next pass.
func (s *Sweeper) SweepOnce(ctx context.Context) SweepResult {
	res := SweepResult{Failures: map[string]error{}}

	now := s.now()
	due := s.registry.Due(now)
	if len(due) == 0 {
		return res
	}

	log := s.log.With().Str("sweep_id", uuid.NewString()).Logger()
	log.Info().Int("due", len(due)).Time("now", now).Msg("sweep pass starting")

	for _, rec := range due {
		cctx, cancel := context.WithTimeout(ctx, s.apiTimeout)
		s.registry.announceDeadline(cctx, rec.ChannelID)
		err := s.registry.Archive(cctx, rec.ChannelID)
		cancel()

		if err != nil {
			res.Failures[rec.ChannelID] = err
			log.Error().Err(err).
				Str("channel_id", rec.ChannelID).
				Str("title", rec.Title).
				Msg("sweep: archive failed, will retry next pass")
			continue
		}
		res.Archived = append(res.Archived, rec.ChannelID)
		log.Info().
			Str("channel_id", rec.ChannelID).
			Str("title", rec.Title).
			Time("deadline", rec.Deadline).
			Msg("sweep: article archived")
	}

	log.Info().Int("archived", len(res.Archived)).Int("failed", len(res.Failures)).Msg("sweep pass finished")
	return res
}
