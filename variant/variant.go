// Package variant implements the cat behaviours.
//
// Every cat satisfies Variant. The default behaviour lives in Base; the
// other cats hold a Base value and call into it for whatever they do not
// change, layering their own effects before or after.
package variant

import (
	"math/rand"
	"time"

	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/rules"
)

// Variant is the capability set the game engine drives each turn.
//
// Step may mutate the live state's board (pushing, hiding or clearing
// obstacles) but never moves the cat itself; it returns the directions the
// engine should try in order. CatWin and PlayerWin must not mutate state.
type Variant interface {
	Info() Info
	Step(state *game.State, rng *rand.Rand) []game.Direction
	CatWin(state *game.State, cell game.Hex) bool
	PlayerWin(state *game.State) bool
	Reset()
}

// Sizer is implemented by cats whose rendered size changes during play.
type Sizer interface {
	Size() float64
}

// Info is the descriptive metadata shown by renderers.
type Info struct {
	ID          string
	Name        string
	Color       string
	Description string
	// Difficulty maps board depth to a 0..4 rating. Depths missing from the
	// table fall back to Flat.
	Difficulty map[int]int
	Flat       int
}

// Rating returns the difficulty rating at depth.
func (i Info) Rating(depth int) int {
	if r, ok := i.Difficulty[depth]; ok {
		return r
	}
	return i.Flat
}

var baseDifficulty = map[int]int{7: 0, 6: 1, 5: 1, 4: 2, 3: 3}

// Base is the default cat: it runs the escape search and uses the plain
// reachability checks.
type Base struct{}

func (Base) Info() Info {
	return Info{
		ID:          "kitten",
		Name:        "Kitten",
		Color:       "black",
		Description: "Click the dots to surround the cat",
		Difficulty:  baseDifficulty,
	}
}

func (Base) Step(state *game.State, rng *rand.Rand) []game.Direction {
	d, ok := rules.EscapeStep(state, rng)
	if !ok {
		return nil
	}
	return []game.Direction{d}
}

func (Base) CatWin(state *game.State, cell game.Hex) bool {
	return rules.CatWin(state.Board, cell)
}

func (Base) PlayerWin(state *game.State) bool {
	return rules.PlayerWin(state)
}

func (Base) Reset() {}

// DoubleStep computes a base move, applies it to a snapshot and computes a
// second base move from there. The live state is never touched. If the
// first move is impossible the second is forfeited.
func DoubleStep(state *game.State, rng *rand.Rand) []game.Direction {
	return chainSteps(state, rng, 2)
}

func chainSteps(state *game.State, rng *rand.Rand, n int) []game.Direction {
	var base Base
	moves := make([]game.Direction, 0, n)
	cur := state
	for i := 0; i < n; i++ {
		step := base.Step(cur, rng)
		if len(step) == 0 {
			break
		}
		moves = append(moves, step...)
		cur = rules.NextState(cur, step[0])
	}
	return moves
}

// Options configures the catalogue.
type Options struct {
	// Now is the clock used by time-sensitive cats. Defaults to time.Now.
	Now func() time.Time
}

// Catalog returns one fresh instance of every cat in cycle order.
func Catalog(opts Options) []Variant {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return []Variant{
		Base{},
		&Red{},
		&Blue{},
		&Cyan{},
		&Green{},
		NewBrown(),
		NewPink(),
		&Maroon{},
		&Yellow{},
		NewOrange(now),
		NewPurple(),
		NewGray(),
		NewWhite(),
	}
}
