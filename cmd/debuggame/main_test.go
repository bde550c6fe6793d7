package main

import (
	"os"
	"testing"

	"github.com/goccy/go-json"

	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/game"
)

func TestWriteTrace(t *testing.T) {
	dir := t.TempDir()
	in := trace{
		GameID:  "g1",
		Variant: "kitten",
		Player:  "blocker",
		Seed:    7,
		Status:  game.Won,
		Frames: []engine.Snapshot{
			{Depth: 3, Cat: game.Origin, Turn: 1, Obstacles: []game.Hex{{Q: 1, R: 0}}},
		},
	}
	path, err := writeTrace(dir, in)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var out trace
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, b)
	}
	if out.GameID != "g1" || out.Status != game.Won || len(out.Frames) != 1 || !out.Frames[0].IsObstacle(game.Hex{Q: 1, R: 0}) {
		t.Fatalf("trace=%+v", out)
	}
}
