// Package main implements the entry point for the course API server, which
// serves the course catalog over HTTP and can also migrate and seed its
// database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/coursedesk/course-api/internal/config"
	"github.com/coursedesk/course-api/internal/platform/logger"
	"github.com/coursedesk/course-api/internal/platform/tracing"
)

// options are the command-line flags of the server binary.
type options struct {
	migrate string
	seed    bool
}

func parseOptions(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a database migration command (up, down, reset, status, version) and exit")
	fs.BoolVar(&opts.seed, "seed", false, "insert demo users, courses and enrollments and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.migrate != "" && opts.seed {
		err := errors.New("-migrate and -seed cannot be combined")
		fmt.Fprintln(output, err)
		fs.Usage()
		return options{}, err
	}
	return opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, tracing and the database, then
// performs the requested one-off command or serves HTTP until ctx is done.
func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment)

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, cfg.Server.Environment, log)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("Tracer shutdown failed", "error", err)
		}
	}()

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	switch {
	case opts.migrate != "":
		defer closeDB(db, log)
		return runMigrations(ctx, db, opts.migrate, log)
	case opts.seed:
		defer closeDB(db, log)
		result, err := seedDatabase(ctx, db, cfg.Auth.BcryptCost, log)
		if err != nil {
			return err
		}
		fmt.Printf("Seeded %d courses. Manager login: %s / %s\n",
			len(result.Courses), result.Manager.Email, seedPassword)
		return nil
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		closeDB(db, log)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
