package variant

import (
	"math/rand"

	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/rules"
)

// MaroonCoverage is the obstacle share below which trapping the maroon cat
// backfires.
const MaroonCoverage = 0.5

// inverter turns the player's first win into a loss when spoiled holds.
// Once sprung every cat-win check is true, and the cat bolts outward.
type inverter struct {
	base   Base
	sprung bool
}

func (v *inverter) reset() {
	v.sprung = false
}

func (v *inverter) catWin(state *game.State, cell game.Hex) bool {
	if v.sprung {
		return true
	}
	return v.base.CatWin(state, cell)
}

func (v *inverter) playerWin(state *game.State, spoiled func(*game.State) bool) bool {
	won := rules.Trapped(state, func(h game.Hex) bool { return v.catWin(state, h) })
	if !won {
		return false
	}
	if spoiled(state) {
		v.sprung = true
		return false
	}
	return true
}

// step runs outward to any open neighbour farther from the origin once
// sprung, falling back to its last facing.
func (v *inverter) step(state *game.State, rng *rand.Rand) []game.Direction {
	if !v.sprung {
		return v.base.Step(state, rng)
	}
	ns := state.Board.Neighbors(state.Cat)
	if rng != nil {
		rng.Shuffle(len(ns), func(i, j int) { ns[i], ns[j] = ns[j], ns[i] })
	}
	for _, n := range ns {
		if n.Len() <= state.Cat.Len() || state.Board.IsObstacle(n) {
			continue
		}
		if d, ok := game.DirectionOf(n.Sub(state.Cat)); ok {
			return []game.Direction{d}
		}
	}
	return []game.Direction{state.CatDir}
}

// Sprung reports whether the trap has already been inverted this game.
func (v *inverter) Sprung() bool {
	return v.sprung
}

// Maroon punishes traps built on a sparse board: if the player corners it
// while less than MaroonCoverage of the cells are obstacles, the player
// does not win and the cat escapes.
type Maroon struct {
	inverter
}

func (*Maroon) Info() Info {
	return Info{
		ID:          "maroon",
		Name:        "Maroon Cat",
		Color:       "#9b0101",
		Description: "Trapping it with under 50% obstacle coverage loses the game",
		Difficulty:  map[int]int{7: 1, 6: 1, 5: 2, 4: 2, 3: 3},
	}
}

func (m *Maroon) Reset() { m.reset() }

func (m *Maroon) CatWin(state *game.State, cell game.Hex) bool {
	return m.catWin(state, cell)
}

func (m *Maroon) PlayerWin(state *game.State) bool {
	return m.playerWin(state, func(s *game.State) bool {
		return Coverage(s.Board) < MaroonCoverage
	})
}

func (m *Maroon) Step(state *game.State, rng *rand.Rand) []game.Direction {
	return m.step(state, rng)
}

// Coverage is the share of in-bounds cells holding an obstacle.
func Coverage(b *game.Board) float64 {
	cells := b.Cells()
	if len(cells) == 0 {
		return 0
	}
	obstacles := 0
	for _, h := range cells {
		if b.IsObstacle(h) {
			obstacles++
		}
	}
	return float64(obstacles) / float64(len(cells))
}

// Yellow demands symmetry: if the obstacle layout is not point-symmetric
// about the origin when the cat is cornered, the player loses instead.
type Yellow struct {
	inverter
}

func (*Yellow) Info() Info {
	return Info{
		ID:          "yellow",
		Name:        "Yellow Cat",
		Color:       "#b3ac32",
		Description: "Trapping it on a board that is not point-symmetric loses the game",
		Difficulty:  map[int]int{7: 2, 6: 2, 5: 3, 4: 3, 3: 4},
	}
}

func (y *Yellow) Reset() { y.reset() }

func (y *Yellow) CatWin(state *game.State, cell game.Hex) bool {
	return y.catWin(state, cell)
}

func (y *Yellow) PlayerWin(state *game.State) bool {
	return y.playerWin(state, func(s *game.State) bool {
		return !PointSymmetric(s.Board)
	})
}

func (y *Yellow) Step(state *game.State, rng *rand.Rand) []game.Direction {
	return y.step(state, rng)
}

// PointSymmetric reports whether every obstacle's mirror through the
// origin is also an obstacle.
func PointSymmetric(b *game.Board) bool {
	for _, o := range b.AllObstacles() {
		if !b.IsObstacle(o.Neg()) {
			return false
		}
	}
	return true
}
