package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"videoprompt/internal/infra"
	"videoprompt/internal/sqlinline"
)

func main() {
	_ = godotenv.Load()

	var (
		dsnFlag    string
		dryRunFlag bool
		timeout    time.Duration
	)
	flag.StringVar(&dsnFlag, "database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	flag.BoolVar(&dryRunFlag, "dry-run", false, "list pending migrations without applying them")
	flag.DurationVar(&timeout, "timeout", time.Minute, "overall timeout")
	flag.Parse()

	logger := infra.NewLogger(os.Getenv("APP_ENV")).With().Str("cmd", "migrate").Logger()

	dsn := strings.TrimSpace(dsnFlag)
	if dsn == "" {
		exitWithError(logger, errors.New("DATABASE_URL or -database-url is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		exitWithError(logger, fmt.Errorf("open database: %w", err))
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		exitWithError(logger, fmt.Errorf("ping database: %w", err))
	}

	applied, err := migrate(ctx, db, sqlinline.Migrations, dryRunFlag, logger)
	if err != nil {
		exitWithError(logger, err)
	}
	logger.Info().Int("applied", applied).Bool("dry_run", dryRunFlag).Msg("migrations complete")
}

func migrate(ctx context.Context, db *sql.DB, migrations []sqlinline.Migration, dryRun bool, logger zerolog.Logger) (int, error) {
	if _, err := db.ExecContext(ctx, sqlinline.QCreateMigrationsTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	done, err := appliedVersions(ctx, db)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range pending(migrations, done) {
		if dryRun {
			logger.Info().Int("version", m.Version).Str("name", m.Name).Msg("pending")
			count++
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return count, err
		}
		logger.Info().Int("version", m.Version).Str("name", m.Name).Msg("applied")
		count++
	}
	return count, nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, sqlinline.QSelectAppliedMigrations)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()
	done := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		done[v] = true
	}
	return done, rows.Err()
}

// pending keeps migration order and drops versions already applied.
func pending(migrations []sqlinline.Migration, done map[int]bool) []sqlinline.Migration {
	var out []sqlinline.Migration
	for _, m := range migrations {
		if !done[m.Version] {
			out = append(out, m)
		}
	}
	return out
}

func apply(ctx context.Context, db *sql.DB, m sqlinline.Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration %d: begin: %w", m.Version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.ExecContext(ctx, sqlinline.QRecordMigration, m.Version, m.Name); err != nil {
		return fmt.Errorf("migration %d: record: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migration %d: commit: %w", m.Version, err)
	}
	return nil
}

func exitWithError(logger zerolog.Logger, err error) {
	logger.Error().Err(err).Msg("migrate failed")
	os.Exit(1)
}
