// Command script runs a game session against a command file, one
// command per line. Blank lines and lines starting with # are skipped.
// It is the non-interactive way to play: walkthrough checks, demos,
// and bug reproduction all feed a file through it.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/xlzhou/treasure-hunter/internal/config"
	"github.com/xlzhou/treasure-hunter/internal/logger"
	"github.com/xlzhou/treasure-hunter/internal/storage"
	"github.com/xlzhou/treasure-hunter/pkg/game"
	"github.com/xlzhou/treasure-hunter/pkg/ui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <commands.txt>\n", os.Args[0])
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Setup(cfg)

	file, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open command file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = file.Close() // Ignore error in defer
	}()

	store, err := storage.NewFileStorage(cfg.SaveDir, log)
	if err != nil {
		log.Error("Failed to open save directory", "error", err, "dir", cfg.SaveDir)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	pres := ui.NewTerminal(os.Stdout, 80, log)
	engine, err := game.NewEngine(pres, store, log)
	if err != nil {
		log.Error("Failed to initialize game", "error", err)
		os.Exit(1)
	}
	engine.Start()

	ctx := context.Background()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := stripComment(line)
		if trimmed == "" {
			continue
		}
		if !engine.Running() {
			break
		}
		fmt.Println("> " + trimmed)
		if err := engine.Execute(ctx, trimmed); err != nil {
			log.Error("command failed", "input", trimmed, "error", err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read command file: %v\n", err)
		os.Exit(1)
	}

	switch engine.SessionStatus() {
	case game.StatusWon:
		fmt.Println("--- session won ---")
	case game.StatusLost:
		fmt.Println("--- session lost ---")
		os.Exit(1)
	default:
		fmt.Println("--- session ended ---")
	}
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}
