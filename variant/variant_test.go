package variant

import (
	"math/rand"
	"testing"
	"time"

	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/rules"
)

func logState(t *testing.T, name string, state *game.State) {
	t.Helper()
	t.Logf("=== %s ===\n%s", name, game.Dump(state))
}

func stateWith(depth int, cat game.Hex, obstacles ...game.Hex) *game.State {
	s := game.NewState(depth)
	s.Cat = cat
	for _, o := range obstacles {
		s.Board.SetObstacle(o)
	}
	return s
}

func ringAround(h game.Hex) []game.Hex {
	out := make([]game.Hex, 0, 6)
	for _, d := range game.Directions {
		out = append(out, h.Add(d.Vec()))
	}
	return out
}

func TestCatalog_Order(t *testing.T) {
	want := []string{
		"kitten", "red", "blue", "cyan", "green", "brown", "pink",
		"maroon", "yellow", "orange", "purple", "gray", "white",
	}
	got := Catalog(Options{})
	if len(got) != len(want) {
		t.Fatalf("catalog has %d cats, want %d", len(got), len(want))
	}
	seen := map[string]bool{}
	for i, v := range got {
		info := v.Info()
		if info.ID != want[i] {
			t.Fatalf("catalog[%d]=%q want %q", i, info.ID, want[i])
		}
		if seen[info.ID] {
			t.Fatalf("duplicate id %q", info.ID)
		}
		seen[info.ID] = true
		if info.Name == "" || info.Color == "" || info.Description == "" {
			t.Fatalf("%s: incomplete info %+v", info.ID, info)
		}
	}
}

func TestInfo_Rating(t *testing.T) {
	base := Base{}.Info()
	if base.Rating(7) != 0 || base.Rating(3) != 3 {
		t.Fatalf("base ratings: 7->%d 3->%d", base.Rating(7), base.Rating(3))
	}
	if base.Rating(10) != 0 {
		t.Fatalf("unknown depth should fall back to flat rating, got %d", base.Rating(10))
	}
	if r := NewPurple().Info().Rating(5); r != 2 {
		t.Fatalf("purple flat rating=%d want 2", r)
	}
}

func TestBase_StepMatchesEscapeSearch(t *testing.T) {
	s := stateWith(5, game.Origin, game.Hex{Q: 1, R: 0})
	want, ok := rules.EscapeStep(s, rand.New(rand.NewSource(4)))
	if !ok {
		t.Fatalf("expected an escape step")
	}
	got := Base{}.Step(s, rand.New(rand.NewSource(4)))
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Step=%v want [%v]", got, want)
	}
}

func TestBase_NoStepWhenTrapped(t *testing.T) {
	s := stateWith(3, game.Origin, ringAround(game.Origin)...)
	if moves := (Base{}).Step(s, rand.New(rand.NewSource(1))); len(moves) != 0 {
		logState(t, "trapped", s)
		t.Fatalf("trapped cat moved: %v", moves)
	}
	if !(Base{}).PlayerWin(s) {
		t.Fatalf("ring should trap the kitten")
	}
}

func TestDoubleStep_ChainsOnSnapshot(t *testing.T) {
	s := stateWith(7, game.Origin)
	before := game.Dump(s)

	moves := DoubleStep(s, rand.New(rand.NewSource(2)))
	if len(moves) != 2 {
		t.Fatalf("open board double step=%v", moves)
	}
	if game.Dump(s) != before {
		t.Fatalf("DoubleStep mutated the live state")
	}
	if applied := rules.ApplyMoves(s, moves); applied != 2 {
		t.Fatalf("applied %d of %v", applied, moves)
	}
	if s.Cat.Len() != 2 {
		t.Fatalf("two outward steps should land on radius 2, got %v", s.Cat)
	}
}

func TestDoubleStep_ForfeitsWhenFirstImpossible(t *testing.T) {
	s := stateWith(3, game.Origin, ringAround(game.Origin)...)
	if moves := DoubleStep(s, rand.New(rand.NewSource(1))); len(moves) != 0 {
		t.Fatalf("trapped double step=%v", moves)
	}
}

func TestOptions_ClockReachesOrange(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := t0
	var orange *Orange
	for _, v := range Catalog(Options{Now: func() time.Time { return now }}) {
		if o, ok := v.(*Orange); ok {
			orange = o
		}
	}
	if orange == nil {
		t.Fatalf("orange missing from catalog")
	}

	s := stateWith(5, game.Origin, game.Hex{Q: 4, R: 0})
	now = t0.Add(OrangePatience)
	orange.Step(s, rand.New(rand.NewSource(1)))
	if s.Board.ObstacleCount() != 0 {
		t.Fatalf("injected clock not used: %d obstacles left", s.Board.ObstacleCount())
	}
}
