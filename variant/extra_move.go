package variant

import (
	"math/rand"

	"github.com/brensch/trapcat/game"
)

// RedCadence is how often, in turns, the red cat takes a second step.
const RedCadence = 8

// Red takes an extra step every RedCadence turns.
type Red struct {
	Base
}

func (*Red) Info() Info {
	info := Base{}.Info()
	info.ID = "red"
	info.Name = "Red Cat"
	info.Color = "red"
	info.Description = "Moves an extra step every 8 turns"
	return info
}

func (r *Red) Step(state *game.State, rng *rand.Rand) []game.Direction {
	if state.Turn%RedCadence == 0 {
		return DoubleStep(state, rng)
	}
	return r.Base.Step(state, rng)
}

// BlueCrowd is the number of adjacent obstacles that makes the blue cat
// move twice.
const BlueCrowd = 3

// Blue moves twice when it is hemmed in by at least BlueCrowd obstacles.
type Blue struct {
	Base
}

func (*Blue) Info() Info {
	info := Base{}.Info()
	info.ID = "blue"
	info.Name = "Blue Cat"
	info.Color = "blue"
	info.Description = "Moves twice when at least 3 obstacles are adjacent"
	return info
}

func (b *Blue) Step(state *game.State, rng *rand.Rand) []game.Direction {
	crowd := 0
	for _, n := range state.Board.Neighbors(state.Cat) {
		if state.Board.IsObstacle(n) {
			crowd++
		}
	}
	if crowd >= BlueCrowd {
		return DoubleStep(state, rng)
	}
	return b.Base.Step(state, rng)
}

// CyanPeriod is the cyan cat's rhythm: it rests, then moves CyanPeriod
// steps at once.
const CyanPeriod = 2

// Cyan only moves on turns divisible by CyanPeriod, and then takes
// CyanPeriod snapshot-chained steps.
type Cyan struct {
	Base
}

func (*Cyan) Info() Info {
	info := Base{}.Info()
	info.ID = "cyan"
	info.Name = "Cyan Cat"
	info.Color = "#008080"
	info.Description = "Rests every other turn, then dashes two steps"
	return info
}

func (*Cyan) Step(state *game.State, rng *rand.Rand) []game.Direction {
	if state.Turn%CyanPeriod != 0 {
		return nil
	}
	return chainSteps(state, rng, CyanPeriod)
}
