package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktsujino/quadlog/internal/cli"
	"github.com/ktsujino/quadlog/internal/db"
	"github.com/ktsujino/quadlog/internal/repository"
	"github.com/ktsujino/quadlog/internal/screentime"
	"github.com/ktsujino/quadlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.quadlog/quadlog.db
	dbPath := os.Getenv("QUADLOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".quadlog", "quadlog.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repository and unit of work
	activityRepo := repository.NewSQLiteActivityRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	activitySvc := service.NewActivityService(activityRepo, uow)

	app := &cli.App{
		Activities: activitySvc,
		Reports:    service.NewReportService(activitySvc),
		ScreenTime: screentime.NewFileProvider(os.Getenv("QUADLOG_SCREENTIME")),
	}

	// Detect interactive terminal for the form and timeline entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
