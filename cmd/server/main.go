// Package main implements the entry point for the promptgen API server,
// which exposes LLM-backed prompt generation over HTTP.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Load a local .env file when present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	app, err := newApplication(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
