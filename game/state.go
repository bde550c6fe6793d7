// Package game defines the core state types for the cat trapping game.
//
// These types are the minimal state needed by the rules and the cat
// variants. The state is designed to be cheaply clonable so that a variant
// can look one move ahead without touching the live game.
package game

import "fmt"

// Status is the outcome of a game from the player's point of view.
type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

var statusNames = [...]string{Playing: "playing", Won: "won", Lost: "lost"}

func (s Status) String() string {
	if int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", uint8(s))
	}
	return statusNames[s]
}

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

func (s Status) MarshalText() ([]byte, error) {
	if int(s) >= len(statusNames) {
		return nil, fmt.Errorf("invalid status %d", uint8(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for i, name := range statusNames {
		if name == string(b) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(b))
}

// State is the complete state needed for rules and cat decisions.
// CatDir is the last direction the cat moved; renderers use it for facing.
type State struct {
	Board  *Board
	Cat    Hex
	CatDir Direction
	Turn   int
	Status Status
}

func NewState(depth int) *State {
	return &State{Board: NewBoard(depth)}
}

// Clone performs a deep copy of the game state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	return &State{
		Board:  s.Board.Clone(),
		Cat:    s.Cat,
		CatDir: s.CatDir,
		Turn:   s.Turn,
		Status: s.Status,
	}
}

// CanMoveTo reports whether the cat may step onto h.
func (s *State) CanMoveTo(h Hex) bool {
	return s.Board.CheckPos(h) && !s.Board.IsObstacle(h)
}
