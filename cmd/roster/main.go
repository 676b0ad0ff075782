package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/tsawler/roster/internal/config"
	"github.com/tsawler/roster/internal/logger"
)

func main() {
	// Load environment variables; a missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg := config.Load()
	if err := logger.Setup(cfg.LoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	Execute()
}
