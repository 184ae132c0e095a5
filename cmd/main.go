package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"chat-relay/internal/config"
	"chat-relay/internal/gemini"
	"chat-relay/internal/handler"
	"chat-relay/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	generator, err := gemini.NewClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	h := handler.NewHandler(generator)

	srv := server.NewServer(cfg, h)
	srv.Start(ctx)
}
