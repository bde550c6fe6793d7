package engine

import (
	"fmt"

	"github.com/brensch/trapcat/game"
)

type EventKind uint8

const (
	CellClicked EventKind = iota
	ResetRequested
	DifficultyChangeRequested
	VariantChangeRequested
)

var eventKindNames = [...]string{
	CellClicked:               "click",
	ResetRequested:            "reset",
	DifficultyChangeRequested: "difficulty",
	VariantChangeRequested:    "variant",
}

func (k EventKind) String() string {
	if int(k) >= len(eventKindNames) {
		return fmt.Sprintf("event(%d)", uint8(k))
	}
	return eventKindNames[k]
}

// ParseEventKind maps a wire name back to its kind.
func ParseEventKind(s string) (EventKind, bool) {
	for i, name := range eventKindNames {
		if name == s {
			return EventKind(i), true
		}
	}
	return 0, false
}

// Event is one player input. Cell is only read for CellClicked.
type Event struct {
	Kind EventKind
	Cell game.Hex
}

// VariantView is the part of a cat's metadata renderers show.
type VariantView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Depth     int            `json:"depth"`
	Obstacles []game.Hex     `json:"obstacles"`
	Cat       game.Hex       `json:"cat"`
	CatDir    game.Direction `json:"cat_dir"`
	CatSize   float64        `json:"cat_size"`
	Turn      int            `json:"turn"`
	Status    game.Status    `json:"status"`
	Variant   VariantView    `json:"variant"`
}

// IsObstacle reports whether the snapshot shows an obstacle on h.
func (s Snapshot) IsObstacle(h game.Hex) bool {
	for _, o := range s.Obstacles {
		if o == h {
			return true
		}
	}
	return false
}

// State rebuilds a rules-level state from the snapshot.
func (s Snapshot) State() *game.State {
	st := game.NewState(s.Depth)
	st.Cat = s.Cat
	st.CatDir = s.CatDir
	st.Turn = s.Turn
	st.Status = s.Status
	for _, o := range s.Obstacles {
		st.Board.SetObstacle(o)
	}
	return st
}
