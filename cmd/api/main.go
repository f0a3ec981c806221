// cmd/api/main.go

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pintrends/internal/config"
	"pintrends/internal/logger"
	"pintrends/internal/server"
	"pintrends/internal/service/extract"
)

func main() {
	// Load .env if present; system env vars apply otherwise
	if err := godotenv.Load(); err != nil {
		logger.Debugf("no .env file found, using system env vars")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Log.Level, cfg.Log.File)

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Run the extractor once, synchronously, before serving. The snapshot
	// is immutable for the process lifetime; there is no refresh path.
	extractor := extract.New(extract.Config{
		DatasetPath: cfg.Dataset.Path,
		Seed:        cfg.Dataset.Seed,
	})
	snapshot := extractor.Run()
	logger.Infof("snapshot %s ready with %d trends", snapshot.ID, snapshot.TrendCount())

	// Initialize HTTP server
	httpServer := server.NewServer(cfg.Server, snapshot)

	// Start HTTP server
	go func() {
		logger.Infof("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	logger.Infof("Shutdown signal received")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}

	logger.Infof("Shutdown complete")
}
