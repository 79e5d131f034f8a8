// main.go - Entry point and dependency injection
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sstent/fittracker-go/internal/config"
	"github.com/sstent/fittracker-go/internal/database"
	"github.com/sstent/fittracker-go/internal/parser"
	"github.com/sstent/fittracker-go/internal/report"
	"github.com/sstent/fittracker-go/internal/web"
)

type App struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *database.SQLiteDB
	cron     *cron.Cron
	server   *http.Server
	reporter *report.Service
	out      io.Writer
	shutdown chan os.Signal
}

func main() {
	fitFile := flag.String("fit", "", "summarize the sessions of a FIT activity file")
	fromDB := flag.Bool("db", false, "summarize the packages stored in the database")
	seed := flag.Bool("seed", false, "store the demo packages in the database")
	serve := flag.Bool("serve", false, "run the HTTP server until interrupted")
	flag.Parse()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	app := &App{
		cfg:      cfg,
		logger:   logger,
		reporter: report.NewService(logger),
		out:      os.Stdout,
		shutdown: make(chan os.Signal, 1),
	}

	if err := app.run(*fitFile, *fromDB, *seed, *serve); err != nil {
		logger.Error("fittracker failed", "error", err)
		os.Exit(1)
	}
}

func (app *App) run(fitFile string, fromDB, seed, serve bool) error {
	if fitFile != "" {
		return app.reportFIT(fitFile)
	}

	daemon := serve || app.cfg.ReportSchedule != ""
	if !fromDB && !seed && !daemon {
		_, err := app.reporter.Run(context.Background(), parser.DemoPackages(), app.out)
		return err
	}

	if err := app.init(serve); err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer app.db.Close()

	if seed {
		if err := app.seed(); err != nil {
			return err
		}
	}

	// -db reports once, also before a daemon takes over
	if fromDB {
		if err := app.reportStored(context.Background()); err != nil {
			return err
		}
	}

	if !daemon {
		return nil
	}

	if err := app.start(); err != nil {
		return err
	}

	// Wait for shutdown signal
	signal.Notify(app.shutdown, os.Interrupt, syscall.SIGTERM)
	<-app.shutdown

	app.stop()
	return nil
}

func (app *App) init(serve bool) error {
	db, err := initDatabase(app.cfg.DBPath)
	if err != nil {
		return err
	}
	app.db = db

	if app.cfg.ReportSchedule != "" {
		app.cron = cron.New()
	}

	if serve {
		app.server = &http.Server{
			Addr:    app.cfg.HTTPAddress,
			Handler: web.NewRouter(web.NewWebHandler(app.db, app.reporter)),
		}
	}

	return nil
}

func (app *App) start() error {
	if app.cron != nil {
		_, err := app.cron.AddFunc(app.cfg.ReportSchedule, app.scheduledReport)
		if err != nil {
			return fmt.Errorf("invalid REPORT_SCHEDULE %q: %w", app.cfg.ReportSchedule, err)
		}
		app.cron.Start()
	}

	if app.server != nil {
		go func() {
			app.logger.Info("Server starting", "address", app.server.Addr)
			if err := app.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				app.logger.Error("Server error", "error", err)
			}
		}()
	}

	return nil
}

func (app *App) stop() {
	app.logger.Info("Shutting down...")

	if app.cron != nil {
		<-app.cron.Stop().Done()
	}

	if app.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := app.server.Shutdown(ctx); err != nil {
			app.logger.Error("Server shutdown error", "error", err)
		}
	}

	app.logger.Info("Shutdown complete")
}

func (app *App) scheduledReport() {
	app.logger.Info("Starting scheduled report...")
	if err := app.reportStored(context.Background()); err != nil {
		app.logger.Error("Scheduled report failed", "error", err)
	}
}

func (app *App) seed() error {
	for _, pkg := range parser.DemoPackages() {
		stored, err := app.db.AddPackage(pkg)
		if err != nil {
			return fmt.Errorf("failed to seed packages: %w", err)
		}
		app.logger.Info("Stored package", "id", stored.ID, "code", stored.Code)
	}
	return nil
}

func (app *App) reportStored(ctx context.Context) error {
	stored, err := app.db.GetPackages(0, 0)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	packages := make([]parser.Package, 0, len(stored))
	for _, p := range stored {
		packages = append(packages, p.Package())
	}

	_, err = app.reporter.Run(ctx, packages, app.out)
	return err
}

func (app *App) reportFIT(filename string) error {
	profile := parser.Profile{Weight: app.cfg.UserWeight, Height: app.cfg.UserHeight}

	packages, err := parser.NewFITParser(profile, app.logger).ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	_, err = app.reporter.Run(context.Background(), packages, app.out)
	return err
}

// Database initialization
func initDatabase(dbPath string) (*database.SQLiteDB, error) {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return database.NewSQLiteDB(dbPath)
}
