package game

import "testing"

func TestBoard_CheckPosMatchesDistance(t *testing.T) {
	b := NewBoard(3)
	for q := -6; q <= 6; q++ {
		for r := -6; r <= 6; r++ {
			h := Hex{Q: q, R: r}
			if b.CheckPos(h) != (h.Len() <= 3) {
				t.Fatalf("CheckPos(%v)=%v with len %d", h, b.CheckPos(h), h.Len())
			}
		}
	}
}

func TestBoard_NeighborsStayInBounds(t *testing.T) {
	b := NewBoard(3)
	for _, h := range b.Cells() {
		ns := b.Neighbors(h)
		for _, n := range ns {
			if !b.CheckPos(n) {
				t.Fatalf("neighbour %v of %v is out of bounds", n, h)
			}
			if n.Dist(h) != 1 {
				t.Fatalf("neighbour %v of %v is not adjacent", n, h)
			}
		}
		if h.Len() < 3 && len(ns) != 6 {
			t.Fatalf("interior cell %v has %d neighbours", h, len(ns))
		}
	}
	// A corner of the hexagon keeps three neighbours, an edge cell four.
	if got := len(b.Neighbors(Hex{Q: 3, R: 0})); got != 3 {
		t.Fatalf("corner neighbours=%d want=3", got)
	}
	if got := len(b.Neighbors(Hex{Q: 2, R: 1})); got != 4 {
		t.Fatalf("edge neighbours=%d want=4", got)
	}
}

func TestBoard_NeighborsIgnoreObstacles(t *testing.T) {
	b := NewBoard(2)
	b.SetObstacle(Hex{Q: 1, R: 0})
	if got := len(b.Neighbors(Origin)); got != 6 {
		t.Fatalf("neighbours=%d want=6", got)
	}
}

func TestBoard_CellCount(t *testing.T) {
	for depth := 0; depth <= 7; depth++ {
		want := 3*depth*(depth+1) + 1
		if got := len(NewBoard(depth).Cells()); got != want {
			t.Fatalf("depth %d: cells=%d want=%d", depth, got, want)
		}
	}
}

func TestBoard_ObstacleSet(t *testing.T) {
	b := NewBoard(3)
	b.SetObstacle(Hex{Q: 1, R: 1})
	b.SetObstacle(Hex{Q: -1, R: 0})
	b.SetObstacle(Hex{Q: 1, R: 1})

	if b.ObstacleCount() != 2 {
		t.Fatalf("count=%d want=2", b.ObstacleCount())
	}
	got := b.AllObstacles()
	want := []Hex{{Q: -1, R: 0}, {Q: 1, R: 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("obstacles=%v want=%v", got, want)
		}
	}

	b.UnsetObstacle(Hex{Q: 1, R: 1})
	if b.IsObstacle(Hex{Q: 1, R: 1}) {
		t.Fatalf("obstacle not removed")
	}
	b.Clear()
	if b.ObstacleCount() != 0 {
		t.Fatalf("clear left %d obstacles", b.ObstacleCount())
	}
}

func TestBoard_Rim(t *testing.T) {
	b := NewBoard(3)
	rim := 0
	for _, h := range b.Cells() {
		if b.IsRim(h) {
			rim++
		}
	}
	if rim != 18 {
		t.Fatalf("rim cells=%d want=18", rim)
	}
}
