package selfplay

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/variant"
)

// RunConfig drives a pool of self-play workers.
type RunConfig struct {
	Workers int
	// MaxGames stops the run after this many games across all workers.
	// Zero means run until the context is cancelled.
	MaxGames int64
	// Variants are cycled per game. Empty means the whole catalogue.
	Variants []string
	Players  []Player
	Template Options
}

// Run plays games on cfg.Workers goroutines and sends every result to out.
// It returns once all workers have stopped; out is not closed.
func Run(ctx context.Context, cfg RunConfig, out chan<- GameResult) int64 {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if len(cfg.Variants) == 0 {
		for _, v := range variant.Catalog(variant.Options{}) {
			cfg.Variants = append(cfg.Variants, v.Info().ID)
		}
	}
	if len(cfg.Players) == 0 {
		cfg.Players = []Player{Blocker{}, Random{}}
	}

	var started, finished atomic.Int64
	var wg sync.WaitGroup
	base := time.Now().UnixNano()

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				n := started.Add(1)
				if cfg.MaxGames > 0 && n > cfg.MaxGames {
					return
				}

				opts := cfg.Template
				opts.Variant = cfg.Variants[int(n-1)%len(cfg.Variants)]
				opts.Player = cfg.Players[int(n-1)%len(cfg.Players)]
				opts.Seed = base + n*1000003 + int64(workerID)

				res, err := PlayGame(ctx, opts)
				if err != nil {
					if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
						log.WithField("worker", workerID).WithError(err).Error("self-play game failed")
					}
					return
				}
				finished.Add(1)

				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}(i)
	}

	wg.Wait()
	return finished.Load()
}
