package selfplay

import (
	"math/rand"

	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/rules"
)

// Player picks the next cell to block from what a renderer would see.
type Player interface {
	Name() string
	Choose(snap engine.Snapshot, rng *rand.Rand) (game.Hex, bool)
}

func freeCells(s *game.State) []game.Hex {
	var out []game.Hex
	for _, h := range s.Board.Cells() {
		if rules.CanPlace(s, h) {
			out = append(out, h)
		}
	}
	return out
}

// Random blocks a uniformly random free cell.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Choose(snap engine.Snapshot, rng *rand.Rand) (game.Hex, bool) {
	free := freeCells(snap.State())
	if len(free) == 0 {
		return game.Hex{}, false
	}
	return free[rng.Intn(len(free))], true
}

// Blocker predicts the plain escape step and blocks it. When that cell is
// unavailable it blocks the open cell nearest the cat inside the region the
// cat can still reach, then falls back to a random cell.
type Blocker struct{}

func (Blocker) Name() string { return "blocker" }

func (Blocker) Choose(snap engine.Snapshot, rng *rand.Rand) (game.Hex, bool) {
	s := snap.State()

	if d, ok := rules.EscapeStep(s, rng); ok {
		if next := s.Cat.Add(d.Vec()); rules.CanPlace(s, next) {
			return next, true
		}
	}

	// otherwise shrink whatever region the cat can still walk, closest first
	var region []game.Hex
	for _, h := range rules.Reachable(s) {
		if rules.CanPlace(s, h) {
			region = append(region, h)
		}
	}
	rng.Shuffle(len(region), func(i, j int) { region[i], region[j] = region[j], region[i] })
	if len(region) > 0 {
		best := region[0]
		for _, h := range region[1:] {
			if h.Dist(s.Cat) < best.Dist(s.Cat) {
				best = h
			}
		}
		return best, true
	}

	return Random{}.Choose(snap, rng)
}

// PlayerByName resolves a player from its Name.
func PlayerByName(name string) (Player, bool) {
	switch name {
	case Random{}.Name():
		return Random{}, true
	case Blocker{}.Name():
		return Blocker{}, true
	}
	return nil, false
}
