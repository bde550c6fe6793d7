// dump.go renders a state as ASCII for traces and test logs.

package game

import (
	"fmt"
	"strings"
)

// Dump draws the board as offset rows: 'C' is the cat, '#' an obstacle,
// 'o' an open rim cell and '.' any other open cell.
func Dump(s *State) string {
	if s == nil || s.Board == nil {
		return "<nil state>"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Turn=%d Depth=%d Status=%s Cat=(%s) Facing=%s Obstacles=%d\n",
		s.Turn, s.Board.Depth, s.Status, s.Cat, s.CatDir, s.Board.ObstacleCount())

	depth := s.Board.Depth
	for r := -depth; r <= depth; r++ {
		sb.WriteString(strings.Repeat(" ", abs(r)))
		for q := -depth; q <= depth; q++ {
			h := Hex{Q: q, R: r}
			if !s.Board.CheckPos(h) {
				continue
			}
			switch {
			case h == s.Cat:
				sb.WriteByte('C')
			case s.Board.IsObstacle(h):
				sb.WriteByte('#')
			case s.Board.IsRim(h):
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
