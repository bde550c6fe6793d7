package variant

import (
	"math/rand"

	"github.com/brensch/trapcat/game"
	"github.com/zyedidia/generic/mapset"
)

// Gray remembers every cell it has left. Obstacles later placed on its
// trail crumble as soon as the cat stands next to them, and those do not
// count toward a trap. Any crumble gives it a double move.
type Gray struct {
	base  Base
	trail mapset.Set[game.Hex]
}

func NewGray() *Gray {
	return &Gray{trail: mapset.New[game.Hex]()}
}

func (*Gray) Info() Info {
	return Info{
		ID:          "gray",
		Name:        "Gray Cat",
		Color:       "#7f7f7f",
		Description: "Obstacles on its old path crumble beneath it",
		Flat:        3,
	}
}

func (g *Gray) Reset() {
	g.trail = mapset.New[game.Hex]()
}

// Remembers reports whether the cat has vacated h this game.
func (g *Gray) Remembers(h game.Hex) bool {
	return g.trail.Has(h)
}

// crumbling lists the trail obstacles next to the cat. These are the ones
// the next step destroys.
func (g *Gray) crumbling(state *game.State) []game.Hex {
	var out []game.Hex
	for _, n := range state.Board.Neighbors(state.Cat) {
		if state.Board.IsObstacle(n) && g.trail.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// withoutCursed clones state and drops the trail obstacles about to crumble.
func (g *Gray) withoutCursed(state *game.State) *game.State {
	view := state.Clone()
	for _, o := range g.crumbling(state) {
		view.Board.UnsetObstacle(o)
	}
	return view
}

func (g *Gray) CatWin(state *game.State, cell game.Hex) bool {
	return g.base.CatWin(state, cell)
}

func (g *Gray) PlayerWin(state *game.State) bool {
	return g.base.PlayerWin(g.withoutCursed(state))
}

func (g *Gray) Step(state *game.State, rng *rand.Rand) []game.Direction {
	crumbled := g.crumbling(state)
	for _, o := range crumbled {
		state.Board.UnsetObstacle(o)
	}

	var moves []game.Direction
	if len(crumbled) > 0 {
		moves = DoubleStep(state, rng)
	} else {
		moves = g.base.Step(state, rng)
	}

	cur := state.Cat
	for _, d := range moves {
		g.trail.Put(cur)
		cur = cur.Add(d.Vec())
	}
	return moves
}
