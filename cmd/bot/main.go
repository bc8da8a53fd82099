package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/four-in-a-row-bot/internal/config"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/move"
	"github.com/iamasit07/four-in-a-row-bot/internal/transport/stdio"
	"github.com/joho/godotenv"
)

// The judge reads moves from stdout, so everything else goes to stderr.
func main() {
	log.SetOutput(os.Stderr)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.LoadConfig()

	service, err := move.NewService(cfg.BotDepth, nil, 0, nil)
	if err != nil {
		log.Fatalf("Invalid engine configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser := stdio.NewParser(os.Stdin, os.Stdout, service, stdio.Settings{
		Columns: cfg.FieldColumns,
		Rows:    cfg.FieldRows,
	}, cfg.BotDifficulty)

	if err := parser.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("[PARSER] Stopped: %v", err)
	}
}
