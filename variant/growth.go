package variant

import (
	"math/rand"

	"github.com/brensch/trapcat/game"
)

const whiteGrowth = 1.2

// White plays like the kitten but grows a little every step.
type White struct {
	Base
	size float64
}

func NewWhite() *White {
	return &White{size: 1}
}

func (*White) Info() Info {
	info := Base{}.Info()
	info.ID = "white"
	info.Name = "White Cat"
	info.Color = "white"
	info.Description = "Gets bigger every turn"
	return info
}

func (w *White) Reset() {
	w.size = 1
}

func (w *White) Size() float64 {
	return w.size
}

func (w *White) Step(state *game.State, rng *rand.Rand) []game.Direction {
	w.size *= whiteGrowth
	return w.Base.Step(state, rng)
}
