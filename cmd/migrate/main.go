// migrate applies the SQL files under migrations/ to the configured
// database through the Atlas CLI.
//
// The atlas binary must be on PATH and migrations/atlas.sum must be current
// (regenerate it with `atlas migrate hash --dir file://migrations`).
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hall-allocation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

type options struct {
	dir      string
	url      string
	atlasBin string
	baseline string
	amount   uint64
	dryRun   bool
	status   bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts options

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&opts.dir, "dir", "migrations", "directory holding the migration files and atlas.sum")
	flagSet.StringVar(&opts.url, "url", "", "target database URL (default: built from DB_* environment variables)")
	flagSet.StringVar(&opts.atlasBin, "atlas", "atlas", "path to the atlas binary")
	flagSet.StringVar(&opts.baseline, "baseline", "", "treat this version as already applied on a non-empty database")
	flagSet.Uint64Var(&opts.amount, "amount", 0, "apply at most this many pending files (0 applies all)")
	flagSet.BoolVar(&opts.dryRun, "dry-run", false, "print the statements without executing them")
	flagSet.BoolVar(&opts.status, "status", false, "report migration status instead of applying")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if opts.url == "" {
		url, err := databaseURL()
		if err != nil {
			return err
		}
		opts.url = url
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(opts.dir)),
	)
	if err != nil {
		return fmt.Errorf("failed to prepare atlas working dir: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), opts.atlasBin)
	if err != nil {
		return fmt.Errorf("failed to create atlas client: %w", err)
	}

	if opts.status {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL: opts.url,
		})
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		logger.Info("migration status",
			"status", status.Status,
			"current", status.Current,
			"next", status.Next,
			"pending", len(status.Pending),
			"applied", len(status.Applied),
		)
		return nil
	}

	result, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:             opts.url,
		BaselineVersion: opts.baseline,
		Amount:          opts.amount,
		DryRun:          opts.dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, file := range result.Applied {
		logger.Info("migration applied", "version", file.Version, "name", file.Name)
	}
	logger.Info("migrations complete",
		"current", result.Current,
		"target", result.Target,
		"applied", len(result.Applied),
		"pending", len(result.Pending),
		"dry_run", opts.dryRun,
	)
	return nil
}

// databaseURL reads only the DB_* variables so the tool runs without the
// server's required settings.
func databaseURL() (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to load .env: %w", err)
	}
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return "", fmt.Errorf("failed to process DB config: %w", err)
	}
	return dbCfg.BuildDSN(), nil
}
