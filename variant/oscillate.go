package variant

import (
	"math/rand"

	"github.com/brensch/trapcat/game"
)

// settled marks a cell whose obstacle stopped toggling.
const settled = -1

// Pink makes obstacles blink. An obstacle first observed on turn T is
// absent on T+1, present on T+2, absent on T+3 and so on. If the player
// re-places one while it is absent, it settles and stays for good.
type Pink struct {
	Base
	// anchor holds, per cell, the turn its cycle started or settled.
	anchor map[game.Hex]int
}

func NewPink() *Pink {
	return &Pink{anchor: make(map[game.Hex]int)}
}

func (*Pink) Info() Info {
	return Info{
		ID:          "pink",
		Name:        "Pink Cat",
		Color:       "#f032e6",
		Description: "Obstacles flip on and off every turn",
		Difficulty:  map[int]int{7: 2, 6: 2, 5: 3, 4: 4, 3: 4},
	}
}

func (p *Pink) Reset() {
	p.anchor = make(map[game.Hex]int)
}

// Anchor reports the turn a cell's cycle started, and whether it has one.
// A settled cell reports -1.
func (p *Pink) Anchor(h game.Hex) (int, bool) {
	turn, ok := p.anchor[h]
	return turn, ok
}

func (p *Pink) Step(state *game.State, rng *rand.Rand) []game.Direction {
	p.Toggle(state)
	return p.Base.Step(state, rng)
}

// Toggle advances every obstacle's cycle to state.Turn.
func (p *Pink) Toggle(state *game.State) {
	for _, h := range state.Board.Cells() {
		start, tracked := p.anchor[h]
		if tracked && start == settled {
			continue
		}
		phase := (state.Turn - start) % 2

		switch {
		case state.Board.IsObstacle(h) && !tracked:
			p.anchor[h] = state.Turn
		case state.Board.IsObstacle(h) && phase == 1:
			state.Board.UnsetObstacle(h)
		case state.Board.IsObstacle(h):
			// present on an even offset means it was placed again while hidden
			p.anchor[h] = settled
		case tracked && phase == 0 && h != state.Cat:
			state.Board.SetObstacle(h)
		}
	}
}
