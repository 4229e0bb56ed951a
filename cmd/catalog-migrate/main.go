// Package main provides the catalog operator command: it opens the configured
// store, creates the schema and can load a small demo data set.
// Usage: catalog-migrate [--config catalog.yaml] [--seed]
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/infra/adapter/persistence/postgres"
	"magazine-catalog/internal/infra/adapter/persistence/sqlite"
	"magazine-catalog/internal/infra/db"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/repository"
	"magazine-catalog/internal/resilience/circuitbreaker"
	"magazine-catalog/internal/resilience/retry"
)

var version = "dev"

type options struct {
	configPath string
	seed       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "catalog-migrate",
		Short: "Create the magazine catalog schema",
		Long: `catalog-migrate opens the store selected by DATABASE_DRIVER and DATABASE_URL,
creates the authors, magazines and articles tables if they are missing and,
with --seed, inserts a small demo data set.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, out)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file (env vars override it)")
	rootCmd.Flags().BoolVar(&opts.seed, "seed", false, "Insert demo authors, magazines and articles")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(out, "catalog-migrate %s\n", version)
		},
	})

	return rootCmd
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger := initLogger(cfg.Log)
	ctx = logging.WithLogger(ctx, logger)
	defer pushMetrics(ctx, logger, cfg.Metrics)

	database, dialect, err := initDatabase(ctx, logger, cfg.Database)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(ctx, database, dialect); err != nil {
		logger.Error("failed to create schema", slog.Any("error", err))
		return err
	}
	logger.Info("schema is up to date", slog.String("driver", string(dialect)))

	if !opts.seed {
		return nil
	}

	connector, breaker, err := initConnector(ctx, database, cfg.Database)
	if err != nil {
		logger.Error("database unreachable through circuit breaker", slog.Any("error", err))
		return err
	}

	if err := seed(ctx, newRepositories(dialect, connector), out); err != nil {
		attrs := []any{slog.Any("error", err)}
		if breaker != nil {
			attrs = append(attrs,
				slog.String("breaker_state", breaker.State().String()),
				slog.Bool("breaker_open", breaker.IsOpen()))
		}
		logger.Error("failed to seed demo data", attrs...)
		return err
	}
	return nil
}

// initLogger builds the process logger from the log section and installs it as the slog default.
func initLogger(cfg config.LogConfig) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.Level, cfg.Format)
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the store, retrying while it refuses connections.
// A database container often needs a few seconds after start before it accepts them.
func initDatabase(ctx context.Context, logger *slog.Logger, cfg config.DatabaseConfig) (*sql.DB, db.Dialect, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, "", err
	}

	var database *sql.DB
	err = retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
		var openErr error
		database, openErr = db.Open(ctx, opts)
		return openErr
	})
	if err != nil {
		return nil, "", err
	}

	logger.Info("database ready",
		slog.String("driver", string(opts.Dialect)),
		slog.Bool("breaker_enabled", cfg.BreakerEnabled))
	return database, opts.Dialect, nil
}

// initConnector returns the connector the gateways draw connections from.
// With the breaker enabled it also pings through the breaker, so a store that
// went away after the migration is reported before any row is written.
// The breaker is nil when disabled.
func initConnector(ctx context.Context, database *sql.DB, cfg config.DatabaseConfig) (db.Connector, *circuitbreaker.DBCircuitBreaker, error) {
	if !cfg.BreakerEnabled {
		return database, nil, nil
	}
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	if err := breaker.PingContext(ctx); err != nil {
		return nil, nil, err
	}
	return breaker, breaker, nil
}

type repositories struct {
	authors   repository.AuthorRepository
	magazines repository.MagazineRepository
	articles  repository.ArticleRepository
}

func newRepositories(dialect db.Dialect, c db.Connector) repositories {
	if dialect == db.DialectPostgres {
		return repositories{
			authors:   postgres.NewAuthorRepo(c),
			magazines: postgres.NewMagazineRepo(c),
			articles:  postgres.NewArticleRepo(c),
		}
	}
	return repositories{
		authors:   sqlite.NewAuthorRepo(c),
		magazines: sqlite.NewMagazineRepo(c),
		articles:  sqlite.NewArticleRepo(c),
	}
}
