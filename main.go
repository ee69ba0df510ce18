package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briefbot/briefbot/internal/adapter/llm"
	"github.com/briefbot/briefbot/internal/config"
	"github.com/briefbot/briefbot/internal/repository"
	"github.com/briefbot/briefbot/internal/service"
	"github.com/briefbot/briefbot/internal/store"
	transport "github.com/briefbot/briefbot/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Fail fast without a provider credential unless running in mock mode.
	if cfg.GroqAPIKey == "" && os.Getenv(llm.EnvBriefbotMode) != llm.ModeMock {
		log.Fatalf("GROQ_API_KEY is not set in the environment variables")
	}

	log.Printf("Starting briefbot...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Model: %s", cfg.Model)
	log.Printf("Database: %s", cfg.DatabaseURL)

	// Initialize users repository
	users, err := repository.NewUserRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize users repository: %v", err)
	}
	defer users.Close()

	// Initialize chat store and completion client
	chats := store.NewChatStore()
	completions := llm.NewCompletionClient(cfg.GroqBaseURL, cfg.GroqAPIKey)

	// Initialize service and server
	svc := service.New(chats, completions, users, cfg)
	server := transport.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down briefbot...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("briefbot stopped")
}
