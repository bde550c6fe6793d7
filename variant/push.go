package variant

import (
	"math/rand"

	"github.com/brensch/trapcat/game"
)

// Green shoves the first obstacle ahead of it one cell further along its
// direction of travel.
type Green struct {
	Base
}

func (*Green) Info() Info {
	info := Base{}.Info()
	info.ID = "green"
	info.Name = "Green Cat"
	info.Color = "#008000"
	info.Description = "Pushes back the obstacle ahead after moving"
	return info
}

func (g *Green) Step(state *game.State, rng *rand.Rand) []game.Direction {
	moves := g.Base.Step(state, rng)
	if len(moves) == 0 {
		return moves
	}
	Push(state, state.Cat, moves[0])
	return moves
}

// Push scans from `from` along d and moves the first obstacle it meets
// one step further. An obstacle pushed off the board, or into another
// obstacle, is removed. It reports whether an obstacle was found.
func Push(state *game.State, from game.Hex, d game.Direction) bool {
	step := d.Vec()
	for pos := from; state.Board.CheckPos(pos); pos = pos.Add(step) {
		if !state.Board.IsObstacle(pos) {
			continue
		}
		state.Board.UnsetObstacle(pos)
		dest := pos.Add(step)
		if state.Board.CheckPos(dest) && dest != state.Cat {
			state.Board.SetObstacle(dest)
		}
		return true
	}
	return false
}
