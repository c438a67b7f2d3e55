package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexanderramin/tubepile/internal/cli"
	"github.com/alexanderramin/tubepile/internal/cli/formatter"
	"github.com/alexanderramin/tubepile/internal/config"
	"github.com/alexanderramin/tubepile/internal/db"
	"github.com/alexanderramin/tubepile/internal/repository"
	"github.com/alexanderramin/tubepile/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	formatter.SetAccent(cfg.ThemeAccent)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Wire the store: process memory unless TUBEPILE_DB names a file.
	var (
		groups repository.PileGroupRepo
		atomic repository.Atomic
	)
	if cfg.Persistent() {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		groups = repository.NewSQLitePileGroupRepo(database)
		atomic = repository.NewSQLiteAtomic(db.NewSQLiteUnitOfWork(database))
	} else {
		mem := repository.NewMemoryPileGroupRepo()
		groups = mem
		atomic = repository.NewMemoryAtomic(mem)
	}

	var logOut io.Writer
	if cfg.LogUseCases {
		logOut = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logOut)

	// Wire services
	groupSvc := service.NewPileGroupService(groups, atomic, service.WithObserver(observer))

	app := &cli.App{
		Groups: groupSvc,
		Import: service.NewImportService(groupSvc, observer),
	}

	// A bare invocation opens the shell only on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
