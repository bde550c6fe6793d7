// debuggame plays one self-play game and prints every board along the way.
// The full trace is also written as JSON so a game can be replayed later.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/config"
	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/game"
	"github.com/brensch/trapcat/logging"
	"github.com/brensch/trapcat/selfplay"
)

// trace is what lands on disk for one debug game.
type trace struct {
	GameID  string            `json:"game_id"`
	Variant string            `json:"variant"`
	Player  string            `json:"player"`
	Seed    int64             `json:"seed"`
	Status  game.Status       `json:"status"`
	Frames  []engine.Snapshot `json:"frames"`
}

func main() {
	var cfg engine.Config
	var logCfg config.Logging
	config.BindEngine(flag.CommandLine, &cfg)
	config.BindLogging(flag.CommandLine, &logCfg, "text")
	outDir := flag.String("out-dir", filepath.Join("debug_games"), "Output directory for debug games")
	cat := flag.String("cat", "kitten", "Cat id to play against")
	player := flag.String("player", "blocker", "Player strategy (random or blocker)")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	depth := flag.Int("depth", 0, "Board depth (0 uses max-depth)")
	quiet := flag.Bool("quiet", false, "Only print the final board")
	flag.Parse()

	if err := logging.Setup(logCfg.Level, logCfg.Format); err != nil {
		log.Fatalf("logging: %v", err)
	}

	p, ok := selfplay.PlayerByName(*player)
	if !ok {
		log.Fatalf("unknown player %q", *player)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var frames []engine.Snapshot
	onStep := func(snap engine.Snapshot) {
		frames = append(frames, snap)
		if !*quiet {
			fmt.Print(game.Dump(snap.State()))
		}
	}

	result, err := selfplay.PlayGame(ctx, selfplay.Options{
		Config:  cfg,
		Variant: *cat,
		Depth:   *depth,
		Player:  p,
		Seed:    *seed,
		OnStep:  onStep,
	})
	if err != nil {
		log.Fatalf("play: %v", err)
	}

	if *quiet && len(frames) > 0 {
		fmt.Print(game.Dump(frames[len(frames)-1].State()))
	}

	path, err := writeTrace(*outDir, trace{
		GameID:  result.GameID,
		Variant: result.Variant,
		Player:  result.Player,
		Seed:    *seed,
		Status:  result.Status,
		Frames:  frames,
	})
	if err != nil {
		log.Fatalf("write trace: %v", err)
	}

	log.WithFields(log.Fields{
		"game":   result.GameID,
		"turns":  result.Turns,
		"status": result.Status,
		"path":   path,
	}).Info("debug game written")
}

func writeTrace(outDir string, t trace) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, t.GameID+".json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
