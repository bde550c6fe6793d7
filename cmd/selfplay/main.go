package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/config"
	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/logging"
	"github.com/brensch/trapcat/selfplay"
	"github.com/brensch/trapcat/store"
)

var totalMoves atomic.Int64

func main() {
	var cfg engine.Config
	var logCfg config.Logging
	config.BindEngine(flag.CommandLine, &cfg)
	config.BindLogging(flag.CommandLine, &logCfg, "text")
	outDir := flag.String("out-dir", config.EnvOrDefault("OUT_DIR", "data/outcomes"), "Output directory for outcome parquet batches")
	workers := flag.Int("workers", config.EnvIntOrDefault("WORKERS", 8), "Number of self-play workers")
	gamesPerFlush := flag.Int("games-per-flush", config.EnvIntOrDefault("GAMES_PER_FLUSH", 500), "Number of games to buffer per parquet flush")
	maxGames := flag.Int64("max-games", 0, "If > 0, stop after this many games (across all workers)")
	maxTurns := flag.Int("max-turns", selfplay.DefaultMaxTurns, "Turn cap per game")
	variants := flag.String("variants", "", "Comma-separated cat ids to cycle (default: all)")
	players := flag.String("players", "blocker,random", "Comma-separated scripted players to cycle")
	useTUI := flag.Bool("tui", config.EnvBoolOrDefault("TUI", false), "Show a live dashboard instead of log lines")
	flag.Parse()

	if err := logging.Setup(logCfg.Level, logCfg.Format); err != nil {
		log.Fatalf("logging: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	var playerList []selfplay.Player
	for _, name := range splitList(*players) {
		p, ok := selfplay.PlayerByName(name)
		if !ok {
			log.Fatalf("unknown player %q", name)
		}
		playerList = append(playerList, p)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	results := make(chan selfplay.GameResult, *workers)
	updates := make(chan selfplay.GameResult, *workers)
	writeReqs := make(chan store.OutcomeRow, (*workers)*4)

	writerDone := make(chan struct{})
	go func() {
		parquetWriterLoop(*outDir, *gamesPerFlush, writeReqs)
		close(writerDone)
	}()

	runDone := make(chan int64)
	go func() {
		runDone <- selfplay.Run(ctx, selfplay.RunConfig{
			Workers:  *workers,
			MaxGames: *maxGames,
			Variants: splitList(*variants),
			Players:  playerList,
			Template: selfplay.Options{
				Config:   cfg,
				MaxTurns: *maxTurns,
				OnStep:   func(engine.Snapshot) { totalMoves.Add(1) },
			},
		}, results)
	}()

	// fan results out to the writer and the dashboard
	go func() {
		for res := range results {
			writeReqs <- res.Row()
			// never block on a dashboard that stopped consuming
			select {
			case updates <- res:
			default:
			}
		}
		close(writeReqs)
	}()

	log.WithFields(log.Fields{"workers": *workers, "out_dir": *outDir}).Info("self-play started")

	var finished int64
	if *useTUI {
		// keep log lines off the dashboard
		f, err := os.OpenFile("selfplay.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)

		p := tea.NewProgram(initialModel(updates), tea.WithAltScreen())
		done := make(chan int64, 1)
		go func() {
			done <- <-runDone
			p.Quit()
		}()
		if _, err := p.Run(); err != nil {
			log.WithError(err).Error("dashboard")
		}
		cancel()
		finished = <-done
	} else {
		finished = logUntilDone(ctx, updates, runDone)
	}

	close(results)
	<-writerDone
	log.WithField("games", finished).Info("shutdown complete: final parquet flush done")
}

// logUntilDone prints each finished game and a periodic rate line until
// the run ends.
func logUntilDone(ctx context.Context, updates <-chan selfplay.GameResult, runDone <-chan int64) int64 {
	startTime := time.Now()
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case n := <-runDone:
			return n
		case <-ctx.Done():
			log.Info("shutdown requested; waiting for workers to finish current games")
			return <-runDone
		case res := <-updates:
			log.WithFields(log.Fields{
				"variant": res.Variant,
				"player":  res.Player,
				"status":  res.Status.String(),
				"turns":   res.Turns,
			}).Debug("game finished")
		case <-ticker.C:
			elapsed := time.Since(startTime).Seconds()
			log.Infof("Stats: Moves/s: %.2f", float64(totalMoves.Load())/elapsed)
		}
	}
}

func parquetWriterLoop(outDir string, gamesPerFlush int, in <-chan store.OutcomeRow) {
	if gamesPerFlush <= 0 {
		gamesPerFlush = 500
	}

	pending := make([]store.OutcomeRow, 0, gamesPerFlush)
	for row := range in {
		pending = append(pending, row)
		if len(pending) < gamesPerFlush {
			continue
		}

		outPath, err := store.WriteBatchParquetAtomic(outDir, pending)
		if err != nil {
			log.Errorf("Parquet flush failed (games=%d): %v", len(pending), err)
		} else {
			log.Infof("Parquet flush ok: %s (games=%d)", outPath, len(pending))
		}
		pending = pending[:0]
	}

	if len(pending) > 0 {
		outPath, err := store.WriteBatchParquetAtomic(outDir, pending)
		if err != nil {
			log.Errorf("Parquet final flush failed (games=%d): %v", len(pending), err)
			return
		}
		log.Infof("Parquet final flush ok: %s (games=%d)", outPath, len(pending))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
