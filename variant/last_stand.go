package variant

import (
	"math/rand"

	"github.com/brensch/trapcat/game"
)

// PurpleLives is how many traps the purple cat can shrug off per game.
const PurpleLives = 1

// Purple survives being cornered: the first trap does not count, and
// before its next move every obstacle on the board is wiped.
type Purple struct {
	base    Base
	lives   int
	wipeDue bool
}

func NewPurple() *Purple {
	return &Purple{lives: PurpleLives}
}

func (*Purple) Info() Info {
	return Info{
		ID:          "purple",
		Name:        "Purple Cat",
		Color:       "#800080",
		Description: "Clears every obstacle when cornered, once",
		Flat:        2,
	}
}

func (p *Purple) Reset() {
	p.lives = PurpleLives
	p.wipeDue = false
}

// Lives reports how many extra lives remain.
func (p *Purple) Lives() int {
	return p.lives
}

func (p *Purple) CatWin(state *game.State, cell game.Hex) bool {
	return p.base.CatWin(state, cell)
}

func (p *Purple) PlayerWin(state *game.State) bool {
	if !p.base.PlayerWin(state) {
		return false
	}
	if p.lives > 0 {
		p.lives--
		p.wipeDue = true
		return false
	}
	return true
}

func (p *Purple) Step(state *game.State, rng *rand.Rand) []game.Direction {
	if p.wipeDue {
		state.Board.Clear()
		p.wipeDue = false
	}
	return p.base.Step(state, rng)
}
