package game

import "fmt"

// Direction is one of the six axial unit steps.
type Direction uint8

const (
	BottomLeft Direction = iota
	Left
	TopLeft
	Right
	TopRight
	BottomRight
)

// Directions lists every direction in canonical order.
var Directions = [6]Direction{BottomLeft, Left, TopLeft, Right, TopRight, BottomRight}

var directionVecs = [6]Hex{
	BottomLeft:  {Q: -1, R: 1},
	Left:        {Q: -1, R: 0},
	TopLeft:     {Q: 0, R: -1},
	Right:       {Q: 1, R: 0},
	TopRight:    {Q: 1, R: -1},
	BottomRight: {Q: 0, R: 1},
}

var directionNames = [6]string{
	BottomLeft:  "bottom_left",
	Left:        "left",
	TopLeft:     "top_left",
	Right:       "right",
	TopRight:    "top_right",
	BottomRight: "bottom_right",
}

// Vec returns the unit displacement for d.
func (d Direction) Vec() Hex {
	if int(d) >= len(directionVecs) {
		return Hex{}
	}
	return directionVecs[d]
}

func (d Direction) Valid() bool {
	return int(d) < len(directionVecs)
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// DirectionOf maps a unit displacement back to its direction. Any vector
// that is not one of the six canonical steps reports false.
func DirectionOf(v Hex) (Direction, bool) {
	for _, d := range Directions {
		if directionVecs[d] == v {
			return d, true
		}
	}
	return 0, false
}

// ParseDirection is the inverse of String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if directionNames[d] == s {
			return d, true
		}
	}
	return 0, false
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, ok := ParseDirection(string(b))
	if !ok {
		return fmt.Errorf("unknown direction %q", string(b))
	}
	*d = parsed
	return nil
}
