// Package engine drives a single game: it owns the live state, the cat
// catalogue and the rng, and turns player events into state transitions.
//
// A Game is not safe for concurrent use.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/rules"
	"github.com/brensch/trapcat/variant"
)

type Game struct {
	cfg      Config
	state    *game.State
	depth    int
	variants []variant.Variant
	active   int
	rng      *rand.Rand
	now      func() time.Time
	log      *log.Entry
	startID  string
}

type Option func(*Game)

// WithRand seeds every random decision of the game from rng.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithClock replaces time.Now for time-sensitive cats.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

func WithLogger(entry *log.Entry) Option {
	return func(g *Game) { g.log = entry }
}

// WithVariant starts the game on the cat with the given id.
func WithVariant(id string) Option {
	return func(g *Game) { g.startID = id }
}

// New validates cfg and returns a game reset to a fresh board at MaxDepth.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, depth: cfg.MaxDepth}
	g.now = time.Now
	g.log = log.NewEntry(log.StandardLogger())

	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.variants = variant.Catalog(variant.Options{Now: g.now})
	if g.startID != "" && !g.SelectVariant(g.startID) {
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, g.startID)
	}

	g.Reset()
	return g, nil
}

func (g *Game) Config() Config {
	return g.cfg
}

// State returns a deep copy of the live state.
func (g *Game) State() *game.State {
	return g.state.Clone()
}

func (g *Game) Variant() variant.Variant {
	return g.variants[g.active]
}

// SelectVariant makes the cat with the given id active. The current game
// carries on; call Reset to start a fresh one.
func (g *Game) SelectVariant(id string) bool {
	for i, v := range g.variants {
		if v.Info().ID == id {
			g.active = i
			return true
		}
	}
	return false
}

// Variants lists the catalogue in cycle order.
func (g *Game) Variants() []variant.Variant {
	return append([]variant.Variant(nil), g.variants...)
}

// PlaceObstacle puts an obstacle on h and advances the turn. It is
// rejected once the game is over, off the board, on an existing obstacle
// or under the cat.
func (g *Game) PlaceObstacle(h game.Hex) bool {
	if g.state.Status != game.Playing || !rules.CanPlace(g.state, h) {
		return false
	}
	g.state.Board.SetObstacle(h)
	g.state.Turn++
	return true
}

// Click is one full player turn: place, check for a trap, then let the cat
// move and check for an escape. It reports whether the placement was
// accepted.
func (g *Game) Click(h game.Hex) bool {
	if !g.PlaceObstacle(h) {
		g.log.WithFields(log.Fields{"cell": h.String(), "status": g.state.Status.String()}).Debug("placement rejected")
		return false
	}

	v := g.Variant()
	if v.PlayerWin(g.state) {
		g.state.Status = game.Won
		g.log.WithFields(log.Fields{"turn": g.state.Turn, "variant": v.Info().ID}).Debug("cat trapped")
		return true
	}

	moves := v.Step(g.state, g.rng)
	applied := rules.ApplyMoves(g.state, moves)
	if applied < len(moves) {
		g.log.WithFields(log.Fields{"moves": len(moves), "applied": applied}).Debug("dropped illegal cat moves")
	}

	if v.CatWin(g.state, g.state.Cat) {
		g.state.Status = game.Lost
		g.log.WithFields(log.Fields{"turn": g.state.Turn, "variant": v.Info().ID, "cat": g.state.Cat.String()}).Debug("cat escaped")
	}
	return true
}

// Reset starts a new game at the current depth with the active cat.
func (g *Game) Reset() {
	if g.depth <= 0 {
		g.depth = g.cfg.MaxDepth
	}
	s := game.NewState(g.depth)
	s.Cat = game.Origin
	s.CatDir = game.Directions[g.rng.Intn(len(game.Directions))]

	g.Variant().Reset()

	n := rules.InitialObstacleCount(g.rng, rules.ObstacleSettings{Initial: g.cfg.InitialObstacles})
	placed := rules.ScatterObstacles(s, g.rng, n)
	s.Status = game.Playing
	g.state = s

	g.log.WithFields(log.Fields{
		"depth":     g.depth,
		"variant":   g.Variant().Info().ID,
		"obstacles": placed,
	}).Debug("game reset")
}

// ToggleDifficulty shrinks the board by one ring, wrapping back to
// MaxDepth below MinDepth. It takes effect on the next Reset.
func (g *Game) ToggleDifficulty() {
	g.depth--
	if g.depth < g.cfg.MinDepth {
		g.depth = g.cfg.MaxDepth
	}
}

// ToggleVariant advances to the next cat and clears that cat's memory of
// any earlier game. The board is left alone until Reset.
func (g *Game) ToggleVariant() {
	g.active = (g.active + 1) % len(g.variants)
	g.Variant().Reset()
}

// Handle applies one event and returns the resulting snapshot. Difficulty
// and variant changes always start a new game; clicks after the game is
// over are ignored.
func (g *Game) Handle(ev Event) Snapshot {
	switch ev.Kind {
	case CellClicked:
		if !g.state.Status.Terminal() {
			g.Click(ev.Cell)
		}
	case ResetRequested:
		g.Reset()
	case DifficultyChangeRequested:
		g.ToggleDifficulty()
		g.Reset()
	case VariantChangeRequested:
		g.ToggleVariant()
		g.Reset()
	default:
		g.log.WithField("kind", ev.Kind.String()).Warn("unknown event")
	}
	return g.Snapshot()
}

func (g *Game) Snapshot() Snapshot {
	v := g.Variant()
	info := v.Info()
	size := 1.0
	if s, ok := v.(variant.Sizer); ok {
		size = s.Size()
	}
	return Snapshot{
		Depth:     g.state.Board.Depth,
		Obstacles: g.state.Board.AllObstacles(),
		Cat:       g.state.Cat,
		CatDir:    g.state.CatDir,
		CatSize:   size,
		Turn:      g.state.Turn,
		Status:    g.state.Status,
		Variant: VariantView{
			ID:          info.ID,
			Name:        info.Name,
			Color:       info.Color,
			Description: info.Description,
			Difficulty:  info.Rating(g.state.Board.Depth),
		},
	}
}

func (g *Game) String() string {
	return fmt.Sprintf("%s depth=%d turn=%d status=%s", g.Variant().Info().ID, g.state.Board.Depth, g.state.Turn, g.state.Status)
}
