package game

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Board is a hexagon of radius Depth around the origin plus a set of
// obstacle cells.
//
// The obstacle mutators do no bounds checking; callers validate with
// CheckPos first. Every obstacle must satisfy CheckPos.
type Board struct {
	Depth     int
	obstacles mapset.Set[Hex]
}

func NewBoard(depth int) *Board {
	return &Board{Depth: depth, obstacles: mapset.New[Hex]()}
}

func (b *Board) IsObstacle(h Hex) bool {
	return b.obstacles.Has(h)
}

func (b *Board) SetObstacle(h Hex) {
	b.obstacles.Put(h)
}

func (b *Board) UnsetObstacle(h Hex) {
	b.obstacles.Remove(h)
}

func (b *Board) Clear() {
	b.obstacles = mapset.New[Hex]()
}

func (b *Board) ObstacleCount() int {
	return b.obstacles.Size()
}

// AllObstacles returns every obstacle, ordered by row then column so that
// seeded callers see a reproducible sequence.
func (b *Board) AllObstacles() []Hex {
	out := make([]Hex, 0, b.obstacles.Size())
	b.obstacles.Each(func(h Hex) {
		out = append(out, h)
	})
	sortHexes(out)
	return out
}

// CheckPos reports whether h lies on the board.
func (b *Board) CheckPos(h Hex) bool {
	return h.Len() <= b.Depth
}

// IsRim reports whether h lies exactly on the outer ring.
func (b *Board) IsRim(h Hex) bool {
	return h.Len() == b.Depth
}

// Neighbors returns the in-bounds neighbours of h in direction order.
// Obstacles are not filtered.
func (b *Board) Neighbors(h Hex) []Hex {
	out := make([]Hex, 0, len(Directions))
	for _, d := range Directions {
		n := h.Add(d.Vec())
		if b.CheckPos(n) {
			out = append(out, n)
		}
	}
	return out
}

// Cells enumerates every in-bounds cell, row by row.
func (b *Board) Cells() []Hex {
	if b.Depth < 0 {
		return nil
	}
	out := make([]Hex, 0, 3*b.Depth*(b.Depth+1)+1)
	for r := -b.Depth; r <= b.Depth; r++ {
		for q := -b.Depth; q <= b.Depth; q++ {
			h := Hex{Q: q, R: r}
			if b.CheckPos(h) {
				out = append(out, h)
			}
		}
	}
	return out
}

// Clone performs a deep copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := NewBoard(b.Depth)
	b.obstacles.Each(func(h Hex) {
		out.obstacles.Put(h)
	})
	return out
}

func sortHexes(hs []Hex) {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].R != hs[j].R {
			return hs[i].R < hs[j].R
		}
		return hs[i].Q < hs[j].Q
	})
}
