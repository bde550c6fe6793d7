package variant

import (
	"math/rand"

	"github.com/brensch/trapcat/game"
	"github.com/zyedidia/generic/mapset"
)

// Brown hides obstacles. Each step it moves every visible obstacle into a
// private set and off the board; its own win checks and search run on a
// temporary clone with the hidden obstacles merged back in.
type Brown struct {
	base   Base
	hidden mapset.Set[game.Hex]
}

func NewBrown() *Brown {
	return &Brown{hidden: mapset.New[game.Hex]()}
}

func (*Brown) Info() Info {
	return Info{
		ID:          "brown",
		Name:        "Brown Cat",
		Color:       "#9a5e24",
		Description: "Obstacles are invisible",
		Difficulty:  map[int]int{7: 1, 6: 1, 5: 2, 4: 3, 3: 3},
	}
}

func (b *Brown) Reset() {
	b.hidden = mapset.New[game.Hex]()
}

// Hidden returns the obstacles the player can no longer see.
func (b *Brown) Hidden() []game.Hex {
	out := make([]game.Hex, 0, b.hidden.Size())
	b.hidden.Each(func(h game.Hex) {
		out = append(out, h)
	})
	return out
}

func (b *Brown) withHidden(state *game.State) *game.State {
	merged := state.Clone()
	b.hidden.Each(func(h game.Hex) {
		merged.Board.SetObstacle(h)
	})
	return merged
}

func (b *Brown) CatWin(state *game.State, cell game.Hex) bool {
	return b.base.CatWin(b.withHidden(state), cell)
}

func (b *Brown) PlayerWin(state *game.State) bool {
	return b.base.PlayerWin(b.withHidden(state))
}

func (b *Brown) Step(state *game.State, rng *rand.Rand) []game.Direction {
	for _, o := range state.Board.AllObstacles() {
		b.hidden.Put(o)
		state.Board.UnsetObstacle(o)
	}
	return b.base.Step(b.withHidden(state), rng)
}
