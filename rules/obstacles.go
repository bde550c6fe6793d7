package rules

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"

	"github.com/brensch/trapcat/game"
)

// ObstacleSettings controls how many obstacles a fresh board starts with.
//
// The baseline is perturbed on every reset: +1 with probability 0.2,
// unchanged with 0.3 and -1 with 0.5, never below zero.
type ObstacleSettings struct {
	Initial int
}

var DefaultObstacleSettings = ObstacleSettings{Initial: 4}

// InitialObstacleCount draws the perturbed obstacle count for one reset.
func InitialObstacleCount(rng *rand.Rand, settings ObstacleSettings) int {
	x := rng.Float64()
	adjust := -1
	switch {
	case x > 0.8:
		adjust = 1
	case x > 0.5:
		adjust = 0
	}
	return max(settings.Initial+adjust, 0)
}

// ScatterObstacles places up to n obstacles uniformly at free in-bounds
// cells that are neither the origin nor the cat. It returns how many were
// placed, which is less than n only when the board runs out of room.
// If rng is nil a deterministic generator derived from the state is used.
func ScatterObstacles(state *game.State, rng *rand.Rand, n int) int {
	if state == nil || state.Board == nil || n <= 0 {
		return 0
	}
	rng = ensureRand(rng, state)

	available := make([]game.Hex, 0, 3*state.Board.Depth*(state.Board.Depth+1))
	for _, h := range state.Board.Cells() {
		if h == game.Origin || !CanPlace(state, h) {
			continue
		}
		available = append(available, h)
	}

	placed := 0
	for placed < n && len(available) > 0 {
		i := rng.Intn(len(available))
		state.Board.SetObstacle(available[i])
		// remove chosen slot
		available[i] = available[len(available)-1]
		available = available[:len(available)-1]
		placed++
	}
	return placed
}

func ensureRand(rng *rand.Rand, state *game.State) *rand.Rand {
	if rng != nil {
		return rng
	}
	seed := int64(deterministicU64Fast(state, 0x43415454524150)) // "CATTRAP"
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

func deterministicU64Fast(state *game.State, salt uint64) uint64 {
	// Mix depth + turn + cat + obstacle layout.
	h := fnv.New64a()
	var buf [8]byte

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	put(uint64(uint32(state.Board.Depth)) | uint64(uint32(state.Turn))<<32)
	put(salt)
	put(uint64(uint32(state.Cat.Q))<<32 | uint64(uint32(state.Cat.R)))
	for _, o := range state.Board.AllObstacles() {
		put(uint64(uint32(o.Q))<<32 | uint64(uint32(o.R)))
	}
	return h.Sum64()
}
