package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/config"
	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/logging"
	"github.com/brensch/trapcat/server"
)

func main() {
	var cfg engine.Config
	var logCfg config.Logging
	config.BindEngine(flag.CommandLine, &cfg)
	config.BindLogging(flag.CommandLine, &logCfg, "text")
	port := flag.String("port", config.EnvOrDefault("PORT", "8080"), "Port to listen on")
	outcomeDir := flag.String("outcomes-dir", config.EnvOrDefault("OUTCOMES_DIR", ""), "Self-play parquet dir served at /api/stats (disabled when empty)")
	origins := flag.String("allowed-origins", config.EnvOrDefault("ALLOWED_ORIGINS", ""), "Comma separated websocket origins (any origin when empty)")
	shutdownGrace := flag.Duration("shutdown-grace", config.EnvDurationOrDefault("SHUTDOWN_GRACE", 5*time.Second), "How long to wait for open sessions on shutdown")
	flag.Parse()

	if err := logging.Setup(logCfg.Level, logCfg.Format); err != nil {
		log.Fatalf("logging: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    ":" + *port,
		Handler: server.New(cfg,
			server.WithOutcomeDir(*outcomeDir),
			server.WithAllowedOrigins(splitList(*origins)...),
		),
	}

	go func() {
		<-ctx.Done()
		log.Info("shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.WithFields(log.Fields{"port": *port, "max_depth": cfg.MaxDepth}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln(err)
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
