package rules

import (
	"github.com/brensch/trapcat/game"
	"github.com/zyedidia/generic/mapset"
)

// CatWin reports whether cell is on the rim, i.e. the cat escapes there.
func CatWin(b *game.Board, cell game.Hex) bool {
	return b.IsRim(cell)
}

// PlayerWin reports whether the cat can no longer reach the rim.
func PlayerWin(state *game.State) bool {
	return Trapped(state, func(h game.Hex) bool { return CatWin(state.Board, h) })
}

// Trapped flood-fills from the cat over open in-bounds cells and reports
// true when no visited cell satisfies exit. Each cell is visited once.
func Trapped(state *game.State, exit func(game.Hex) bool) bool {
	visited := mapset.New[game.Hex]()
	visited.Put(state.Cat)
	queue := []game.Hex{state.Cat}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if exit(cur) {
			return false
		}
		for _, n := range state.Board.Neighbors(cur) {
			if state.Board.IsObstacle(n) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return true
}

// Reachable returns every cell the cat can walk to, including its own.
func Reachable(state *game.State) []game.Hex {
	visited := mapset.New[game.Hex]()
	visited.Put(state.Cat)
	queue := []game.Hex{state.Cat}
	out := make([]game.Hex, 0, 16)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		for _, n := range state.Board.Neighbors(cur) {
			if state.Board.IsObstacle(n) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return out
}

// CanPlace reports whether an obstacle may go on h: in bounds, free and
// not under the cat.
func CanPlace(state *game.State, h game.Hex) bool {
	return state.Board.CheckPos(h) && !state.Board.IsObstacle(h) && h != state.Cat
}

// ApplyMoves walks the cat along moves in order. A move onto an obstacle
// or off the board is dropped without stopping the rest. It returns the
// number of moves applied.
func ApplyMoves(state *game.State, moves []game.Direction) int {
	applied := 0
	for _, d := range moves {
		if !d.Valid() {
			continue
		}
		next := state.Cat.Add(d.Vec())
		if !state.CanMoveTo(next) {
			continue
		}
		state.Cat = next
		state.CatDir = d
		applied++
	}
	return applied
}

// NextState returns a snapshot with the cat moved one step along d. The
// input is never modified; an illegal step leaves the cat in place.
func NextState(state *game.State, d game.Direction) *game.State {
	next := state.Clone()
	ApplyMoves(next, []game.Direction{d})
	return next
}
