package main

import (
	"strings"
	"testing"

	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/selfplay"
	"github.com/brensch/trapcat/store"
)

func TestParquetWriterLoop_FlushesBatchesAndRemainder(t *testing.T) {
	dir := t.TempDir()
	in := make(chan store.OutcomeRow, 8)
	for i := 0; i < 5; i++ {
		in <- store.OutcomeRow{GameID: string(rune('a' + i)), Variant: "kitten", Status: "won"}
	}
	close(in)

	parquetWriterLoop(dir, 2, in)

	rows, err := store.ReadOutcomeDir(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("wrote %d rows, want 5", len(rows))
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" red, ,blue,")
	if len(got) != 2 || got[0] != "red" || got[1] != "blue" {
		t.Fatalf("splitList=%q", got)
	}
	if splitList("") != nil {
		t.Fatalf("empty list should be nil")
	}
}

func TestDashboard_TracksResults(t *testing.T) {
	m := initialModel(make(chan selfplay.GameResult))
	next, _ := m.Update(selfplay.GameResult{Variant: "pink", Player: "random", Status: game.Won, Turns: 9})
	m = next.(model)
	next, _ = m.Update(selfplay.GameResult{Variant: "pink", Player: "blocker", Status: game.Lost, Turns: 3})
	m = next.(model)

	if m.gamesPlayed != 2 || m.stats["pink"].Won != 1 || m.stats["pink"].Lost != 1 {
		t.Fatalf("model=%+v", m)
	}
	view := m.View()
	if !strings.Contains(view, "pink") || !strings.Contains(view, "50.0%") {
		t.Fatalf("view missing stats:\n%s", view)
	}
}
