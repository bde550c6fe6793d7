// Package selfplay runs scripted players against the cats to collect
// outcome statistics.
package selfplay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/store"
)

const DefaultMaxTurns = 200

type GameResult struct {
	GameID    string
	Variant   string
	Player    string
	Depth     int
	Turns     int
	Status    game.Status
	Obstacles []game.Hex
	Cat       game.Hex
	Rejected  int
	Duration  time.Duration
}

type Options struct {
	Config  engine.Config
	Variant string
	// Depth, if set, overrides Config.MaxDepth for this game.
	Depth    int
	Player   Player
	Seed     int64
	MaxTurns int
	Clock    func() time.Time
	// OnStep is called after every accepted click.
	OnStep func(engine.Snapshot)
	Log    *log.Entry
}

// PlayGame plays one game to a terminal status or MaxTurns accepted
// clicks, whichever comes first. A cancelled context stops the game early
// and returns the partial result with ctx.Err().
func PlayGame(ctx context.Context, opts Options) (GameResult, error) {
	if opts.Player == nil {
		opts.Player = Blocker{}
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = DefaultMaxTurns
	}
	cfg := opts.Config
	if cfg == (engine.Config{}) {
		cfg = engine.DefaultConfig()
	}
	if opts.Depth > 0 {
		cfg.MaxDepth = opts.Depth
		cfg.MinDepth = min(cfg.MinDepth, opts.Depth)
	}
	entry := opts.Log
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	engineOpts := []engine.Option{engine.WithRand(rng), engine.WithLogger(entry)}
	if opts.Variant != "" {
		engineOpts = append(engineOpts, engine.WithVariant(opts.Variant))
	}
	if opts.Clock != nil {
		engineOpts = append(engineOpts, engine.WithClock(opts.Clock))
	}
	g, err := engine.New(cfg, engineOpts...)
	if err != nil {
		return GameResult{}, fmt.Errorf("new game: %w", err)
	}

	start := time.Now()
	res := GameResult{
		GameID:  uuid.NewString(),
		Variant: g.Variant().Info().ID,
		Player:  opts.Player.Name(),
	}
	snap := g.Snapshot()
	res.Depth = snap.Depth

	// players only choose placeable cells, so a run of rejections means a bug
	maxStreak := opts.MaxTurns
	streak := 0
	for !snap.Status.Terminal() && snap.Turn < opts.MaxTurns && streak <= maxStreak {
		if err := ctx.Err(); err != nil {
			fill(&res, snap, start)
			return res, err
		}

		cell, ok := opts.Player.Choose(snap, rng)
		if !ok {
			break
		}
		if !g.Click(cell) {
			res.Rejected++
			streak++
			continue
		}
		streak = 0
		snap = g.Snapshot()
		if opts.OnStep != nil {
			opts.OnStep(snap)
		}
	}

	fill(&res, snap, start)
	entry.WithFields(log.Fields{
		"game_id": res.GameID,
		"variant": res.Variant,
		"player":  res.Player,
		"status":  res.Status.String(),
		"turns":   res.Turns,
	}).Debug("self-play game finished")
	return res, nil
}

func fill(res *GameResult, snap engine.Snapshot, start time.Time) {
	res.Turns = snap.Turn
	res.Status = snap.Status
	res.Obstacles = snap.Obstacles
	res.Cat = snap.Cat
	res.Duration = time.Since(start)
}

// Row converts a result to its parquet form.
func (r GameResult) Row() store.OutcomeRow {
	row := store.OutcomeRow{
		GameID:     r.GameID,
		Variant:    r.Variant,
		Player:     r.Player,
		Depth:      int32(r.Depth),
		Turns:      int32(r.Turns),
		Status:     r.Status.String(),
		Rejected:   int32(r.Rejected),
		DurationMs: r.Duration.Milliseconds(),
		ObstacleQ:  make([]int32, 0, len(r.Obstacles)),
		ObstacleR:  make([]int32, 0, len(r.Obstacles)),
		CatQ:       int32(r.Cat.Q),
		CatR:       int32(r.Cat.R),
	}
	for _, o := range r.Obstacles {
		row.ObstacleQ = append(row.ObstacleQ, int32(o.Q))
		row.ObstacleR = append(row.ObstacleR, int32(o.R))
	}
	return row
}
