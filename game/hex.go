package game

import "fmt"

// Hex is an axial hex coordinate. The third cube coordinate is derived,
// so Q + R + S() == 0 always holds.
//
// The origin (0,0) is the centre of the board.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Origin is the centre cell, where the cat starts every game.
var Origin = Hex{}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R}
}

func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k}
}

// Neg mirrors h through the origin.
func (h Hex) Neg() Hex {
	return h.Scale(-1)
}

// Dist returns the hex distance between h and o.
func (h Hex) Dist(o Hex) int {
	d := h.Sub(o)
	return max(abs(d.Q), abs(d.R), abs(d.S()))
}

// Len is the distance from the origin.
func (h Hex) Len() int {
	return h.Dist(Origin)
}

func (h Hex) String() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
