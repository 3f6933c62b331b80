package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/Loreweave/api/internal/api"
	"github.com/Loreweave/api/internal/config"
	"github.com/Loreweave/api/internal/db"
	"github.com/Loreweave/api/internal/mapgen"
	"github.com/Loreweave/api/internal/world"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.Logging)
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "db_path", cfg.Database.Path, "log_level", cfg.Logging.Level)

	database, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run database migrations", "error", err)
	}

	store := world.NewStore(database)

	// The HTTP preview path computes on the request goroutine; the
	// coordinator still gives it the shared result cache.
	mapCoordinator := mapgen.NewSynchronousCoordinator()
	defer mapCoordinator.Close()

	handler := api.NewHandler(store, mapCoordinator, cfg.Map)
	router := api.SetupRoutes(handler)
	log.Debug("API routes configured")

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Starting Loreweave API server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}

func setupLogging(cfg config.LoggingConfig) {
	switch cfg.Level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warn("Invalid log level, using info", "level", cfg.Level)
		log.SetLevel(log.InfoLevel)
	}

	if cfg.Format == "pretty" || !cfg.Structured {
		log.SetReportCaller(true)
		log.SetReportTimestamp(true)
	}

	log.SetPrefix("[loreweave-api] ")
}
