package variant

import (
	"math/rand"
	"testing"

	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/rules"
)

func TestPurple_FirstTrapClearsBoard(t *testing.T) {
	p := NewPurple()
	ring := ringAround(game.Origin)
	s := stateWith(3, game.Origin, ring...)

	if p.PlayerWin(s) {
		t.Fatalf("first trap should be shrugged off")
	}
	if p.Lives() != 0 {
		t.Fatalf("lives=%d after first trap", p.Lives())
	}

	moves := p.Step(s, rand.New(rand.NewSource(1)))
	if s.Board.ObstacleCount() != 0 {
		logState(t, "after wipe", s)
		t.Fatalf("obstacles not cleared")
	}
	if len(moves) != 1 {
		t.Fatalf("cat should move on the cleared board, moves=%v", moves)
	}
	rules.ApplyMoves(s, moves)

	for _, h := range ringAround(s.Cat) {
		if s.Board.CheckPos(h) {
			s.Board.SetObstacle(h)
		}
	}
	if rules.PlayerWin(s) && !p.PlayerWin(s) {
		logState(t, "second trap", s)
		t.Fatalf("second trap should count")
	}
}

func TestPurple_ResetRestoresLife(t *testing.T) {
	p := NewPurple()
	s := stateWith(3, game.Origin, ringAround(game.Origin)...)
	p.PlayerWin(s)
	p.Reset()
	if p.Lives() != PurpleLives {
		t.Fatalf("lives=%d after Reset", p.Lives())
	}
	p.Step(s, rand.New(rand.NewSource(1)))
	if s.Board.ObstacleCount() == 0 {
		t.Fatalf("Reset left a pending wipe")
	}
}
