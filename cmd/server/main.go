/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the calendar view-model engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize the logger
  3. Load the YAML configuration (defaults when the file is absent)
  4. Configure the HTTP router
  5. Start the server with graceful shutdown

COMMAND-LINE FLAGS:
  -config     Path to the YAML config file (default: calendar.yaml)
  -listen     Listen address override (default: from config)
  -log-level  Log level (default: info)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration model
*/
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/calendar-engine/api"
	"github.com/warp/calendar-engine/config"
	"github.com/warp/calendar-engine/internal/logger"
)

func main() {
	// Flags
	configPath := flag.String("config", "calendar.yaml", "path to YAML config file")
	listen := flag.String("listen", "", "listen address override")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger.Init(logger.Options{Level: *logLevel, Format: "console"})
	log := logger.Get()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	// Create router
	router := api.NewRouter(api.NewHandler(cfg))

	// Create server
	server := &http.Server{
		Addr:         cfg.Listen,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", cfg.Listen).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
