package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pep299/wiki-stub-finder/internal/application"
	"github.com/pep299/wiki-stub-finder/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("Wiki Stub Finder Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  OPENAI_API_KEY        OpenAI API key (required)\n")
		fmt.Printf("  EMBEDDING_MODEL       Embedding model (default: text-embedding-3-small)\n")
		fmt.Printf("  CHAT_MODEL            Chat model for topic extraction (default: gpt-3.5-turbo)\n")
		fmt.Printf("  WIKIPEDIA_API_URL     MediaWiki API endpoint (default: English Wikipedia)\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		fmt.Printf("  ENV                   development or production (controls CORS)\n")
		fmt.Printf("  CORS_ORIGINS          Allowed origins in production, comma-separated\n")
		fmt.Printf("  CACHE_TTL_HOURS       Embedding cache TTL (default: 24)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Wiki Stub Finder Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Create application (handles all DI)
	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", app.Config.Host, app.Config.Port),
		Handler:      server.New(app),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Sweep expired embedding cache entries on a schedule
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if removed := app.EmbeddingCache.PurgeExpired(); removed > 0 {
			app.Logger.Printf("🧹 Purged %d expired embedding cache entries", removed)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule cache sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("🚀 Starting server on %s:%s", app.Config.Host, app.Config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("🛑 Shutting down server...")

	c.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}
