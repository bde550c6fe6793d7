package variant

import (
	"math/rand"
	"testing"

	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/rules"
)

func TestGray_TrailObstaclesCrumble(t *testing.T) {
	g := NewGray()
	s := stateWith(5, game.Origin)
	rng := rand.New(rand.NewSource(3))

	rules.ApplyMoves(s, g.Step(s, rng))
	if !g.Remembers(game.Origin) {
		t.Fatalf("vacated origin not remembered")
	}

	s.Board.SetObstacle(game.Origin)
	moves := g.Step(s, rng)
	if s.Board.IsObstacle(game.Origin) {
		logState(t, "no crumble", s)
		t.Fatalf("obstacle on the trail next to the cat should crumble")
	}
	if len(moves) != 2 {
		t.Fatalf("crumble should grant a double move, got %v", moves)
	}
}

func TestGray_TrailObstaclesDoNotTrap(t *testing.T) {
	g := NewGray()
	s := stateWith(5, game.Origin)
	rules.ApplyMoves(s, g.Step(s, rand.New(rand.NewSource(5))))

	for _, h := range ringAround(s.Cat) {
		s.Board.SetObstacle(h)
	}
	if !rules.PlayerWin(s) {
		logState(t, "ring", s)
		t.Fatalf("plain rules should see a trap")
	}
	if g.PlayerWin(s) {
		t.Fatalf("the ring includes the remembered origin, so it should not trap")
	}

	g.Reset()
	if g.Remembers(game.Origin) || !g.PlayerWin(s) {
		t.Fatalf("Reset should forget the trail")
	}
}

func TestGray_FarTrailObstaclesStillTrap(t *testing.T) {
	g := NewGray()
	g.trail.Put(game.Origin)
	g.trail.Put(game.Hex{Q: 1, R: 0})

	cat := game.Hex{Q: 2, R: 0}
	s := stateWith(5, cat)
	for _, c := range []game.Hex{{Q: 1, R: 0}, cat} {
		for _, h := range ringAround(c) {
			if h != cat && h != (game.Hex{Q: 1, R: 0}) {
				s.Board.SetObstacle(h)
			}
		}
	}
	if !s.Board.IsObstacle(game.Origin) {
		t.Fatalf("origin should be part of the wall")
	}

	if !g.PlayerWin(s) {
		logState(t, "pocket", s)
		t.Fatalf("a trail obstacle two cells from the cat should still count")
	}
	if moves := g.Step(s, rand.New(rand.NewSource(1))); len(moves) != 0 {
		t.Fatalf("trapped cat moved: %v", moves)
	}
	if !s.Board.IsObstacle(game.Origin) {
		t.Fatalf("far trail obstacle crumbled")
	}
}

func TestWhite_GrowsEachStep(t *testing.T) {
	w := NewWhite()
	var _ Sizer = w
	s := stateWith(5, game.Origin)

	w.Step(s, rand.New(rand.NewSource(1)))
	w.Step(s, rand.New(rand.NewSource(1)))
	if got := w.Size(); got < 1.4399 || got > 1.4401 {
		t.Fatalf("size=%v want 1.44", got)
	}
	w.Reset()
	if w.Size() != 1 {
		t.Fatalf("size=%v after Reset", w.Size())
	}
}
