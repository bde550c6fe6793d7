package main

import (
	"flag"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/config"
	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/logging"
)

func main() {
	var cfg engine.Config
	var logCfg config.Logging
	config.BindEngine(flag.CommandLine, &cfg)
	config.BindLogging(flag.CommandLine, &logCfg, "text")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	startCat := flag.String("cat", config.EnvOrDefault("TRAPCAT_CAT", ""), "Cat id to start with")
	logFile := flag.String("log-file", config.EnvOrDefault("TRAPCAT_LOG_FILE", ""), "Write logs here (logs are discarded when empty)")
	flag.Parse()

	if err := logging.Setup(logCfg.Level, logCfg.Format); err != nil {
		log.Fatalf("logging: %v", err)
	}
	// the terminal belongs to the board
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	opts := []engine.Option{engine.WithRand(rand.New(rand.NewSource(*seed)))}
	if *startCat != "" {
		opts = append(opts, engine.WithVariant(*startCat))
	}
	g, err := engine.New(cfg, opts...)
	if err != nil {
		// logs are redirected; make sure the user sees this
		log.SetOutput(os.Stderr)
		log.Fatalf("new game: %v", err)
	}
	log.WithField("seed", *seed).Info("starting")

	if _, err := tea.NewProgram(newModel(g), tea.WithAltScreen()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
