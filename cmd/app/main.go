package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier/cmd"
	"atelier/internal/adapters/out/gormdb"
	"atelier/internal/adapters/out/seed"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := newLogger(configs)

	db, err := gormdb.OpenWithLogger(configs.DBDsn, logger)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err = gormdb.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	if configs.SeedEnabled {
		seedData(app, logger)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func newLogger(configs cmd.Config) *slog.Logger {
	level, _ := configs.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if configs.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func seedData(app cmd.CompositionRoot, logger *slog.Logger) {
	data, err := seed.Default()
	if err != nil {
		log.Fatalf("Error reading seed data: %v", err)
	}
	added, err := seed.Apply(context.Background(), app.UnitOfWorkFactory(), data, time.Now())
	if err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}
	logger.Info("Seed data applied", "records_added", added)
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error creating http server: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	server.Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
