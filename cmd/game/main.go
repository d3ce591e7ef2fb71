package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/xlzhou/treasure-hunter/internal/config"
	"github.com/xlzhou/treasure-hunter/internal/logger"
	"github.com/xlzhou/treasure-hunter/internal/storage"
	"github.com/xlzhou/treasure-hunter/pkg/game"
	"github.com/xlzhou/treasure-hunter/pkg/ui"
)

func main() {
	_ = godotenv.Load() // optional .env, real env wins

	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Treasure Hunter",
		"backend", cfg.Backend,
		"environment", cfg.Environment)

	var store storage.Storage
	switch cfg.Backend {
	case config.BackendRedis:
		store = storage.NewRedisStorage(cfg.RedisAddr, log)
		pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			log.Error("Failed to connect to storage", "error", err)
			fmt.Fprintf(os.Stderr, "Could not connect to redis at %s\n", cfg.RedisAddr)
			os.Exit(1)
		}
	default:
		fs, err := storage.NewFileStorage(cfg.SaveDir, log)
		if err != nil {
			log.Error("Failed to open save directory", "error", err, "dir", cfg.SaveDir)
			os.Exit(1)
		}
		store = fs
	}
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	transcript := ui.NewTranscript()
	engine, err := game.NewEngine(transcript, store, log)
	if err != nil {
		log.Error("Failed to initialize game", "error", err)
		os.Exit(1)
	}
	engine.Start()

	p := tea.NewProgram(NewGameUI(engine, transcript, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
