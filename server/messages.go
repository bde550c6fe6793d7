package server

import (
	"errors"
	"fmt"

	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/game"
)

var ErrUnknownMessage = errors.New("unknown message")

const (
	TypeState = "state"
	TypeError = "error"
)

// ClientMessage is one input from the browser. Q and R are only read for
// clicks.
type ClientMessage struct {
	Type string `json:"type"`
	Q    int    `json:"q"`
	R    int    `json:"r"`
}

// Event maps the message onto an engine event.
func (m ClientMessage) Event() (engine.Event, error) {
	kind, ok := engine.ParseEventKind(m.Type)
	if !ok {
		return engine.Event{}, fmt.Errorf("%w: type %q", ErrUnknownMessage, m.Type)
	}
	return engine.Event{Kind: kind, Cell: game.Hex{Q: m.Q, R: m.R}}, nil
}

type ServerMessage struct {
	Type    string           `json:"type"`
	Session string           `json:"session,omitempty"`
	State   *engine.Snapshot `json:"state,omitempty"`
	Error   string           `json:"error,omitempty"`
}
