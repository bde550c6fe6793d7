package rules

import (
	"math"
	"math/rand"

	"github.com/brensch/trapcat/game"
	"github.com/zyedidia/generic/mapset"
)

// SearchRuns is how many independent shuffled BFS passes feed the target
// pool. Each pass can discover a different first step for the same target.
const SearchRuns = 3

// Target is a rim cell the cat can reach, how far away it is, and the
// cat's neighbour that starts the shortest path found to it.
type Target struct {
	Cell  game.Hex
	Dist  int
	First game.Hex
}

type searchNode struct {
	pos   game.Hex
	dist  int
	first game.Hex
}

// FindTargets runs SearchRuns breadth-first passes from the cat and
// collects every distinct reachable rim target in discovery order.
// The directions are reshuffled before each node expansion.
func FindTargets(state *game.State, rng *rand.Rand) []Target {
	rng = ensureRand(rng, state)

	seen := mapset.New[Target]()
	targets := make([]Target, 0, 6*state.Board.Depth)
	dirs := game.Directions

	for run := 0; run < SearchRuns; run++ {
		visited := mapset.New[game.Hex]()
		visited.Put(state.Cat)
		queue := []searchNode{{pos: state.Cat, first: state.Cat}}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			if CatWin(state.Board, cur.pos) {
				t := Target{Cell: cur.pos, Dist: cur.dist, First: cur.first}
				if !seen.Has(t) {
					seen.Put(t)
					targets = append(targets, t)
				}
				continue
			}

			rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
			for _, d := range dirs {
				n := cur.pos.Add(d.Vec())
				if !state.Board.CheckPos(n) || state.Board.IsObstacle(n) || visited.Has(n) {
					continue
				}
				visited.Put(n)
				first := cur.first
				if cur.dist == 0 {
					first = n
				}
				queue = append(queue, searchNode{pos: n, dist: cur.dist + 1, first: first})
			}
		}
	}
	return targets
}

// Score rates a target; lower is better. A target one step away always
// wins. Otherwise extra distance over minDist costs depth per step and each
// obstacle near the target adds depth/d².
func Score(state *game.State, t Target, minDist int, obstacles []game.Hex) float64 {
	if t.Dist == 1 {
		return math.Inf(-1)
	}
	depth := float64(state.Board.Depth)
	score := float64(t.Dist-minDist) * depth
	for _, o := range obstacles {
		d := float64(t.Cell.Dist(o))
		score += depth / (d * d)
	}
	return score
}

// BestTarget picks the lowest scoring target. Targets are visited in a
// shuffled order and the first minimum is kept, so ties break at random.
func BestTarget(state *game.State, targets []Target, rng *rand.Rand) (Target, bool) {
	if len(targets) == 0 {
		return Target{}, false
	}
	rng = ensureRand(rng, state)

	minDist := targets[0].Dist
	for _, t := range targets[1:] {
		minDist = min(minDist, t.Dist)
	}

	order := make([]Target, len(targets))
	copy(order, targets)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	obstacles := state.Board.AllObstacles()
	best := -1
	bestScore := math.Inf(1)
	for i, t := range order {
		score := Score(state, t, minDist, obstacles)
		if best < 0 || score < bestScore {
			best = i
			bestScore = score
		}
	}
	return order[best], true
}

// EscapeStep chooses the cat's next single step. It reports false when the
// cat is already on the rim, no rim cell is reachable, or the chosen first
// step does not decode to a direction. The state is not modified.
func EscapeStep(state *game.State, rng *rand.Rand) (game.Direction, bool) {
	if CatWin(state.Board, state.Cat) {
		return 0, false
	}
	rng = ensureRand(rng, state)
	target, ok := BestTarget(state, FindTargets(state, rng), rng)
	if !ok {
		return 0, false
	}
	return game.DirectionOf(target.First.Sub(state.Cat))
}
