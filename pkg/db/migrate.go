package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// MigrateOption configures Migrate.
type MigrateOption func(*migrateConfig)

type migrateConfig struct {
	table  string
	dir    string
	logger *slog.Logger
}

// WithMigrationsTable overrides the goose version table. Default: schema_migrations.
func WithMigrationsTable(name string) MigrateOption {
	return func(c *migrateConfig) {
		if name != "" {
			c.table = name
		}
	}
}

// WithMigrationsDir sets the directory inside the filesystem. Default: ".".
func WithMigrationsDir(dir string) MigrateOption {
	return func(c *migrateConfig) { c.dir = dir }
}

// WithMigrationsLogger routes goose output to l.
func WithMigrationsLogger(l *slog.Logger) MigrateOption {
	return func(c *migrateConfig) { c.logger = l }
}

// Migrate applies all pending migrations from fsys.
// goose keeps its settings in package globals, so concurrent calls are not supported.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, opts ...MigrateOption) error {
	cfg := migrateConfig{table: "schema_migrations", dir: ".", logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Shares the pool's connections; closing it would close the pool.
	sqlDB := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(fsys)
	goose.SetLogger(gooseLogger{cfg.logger})
	goose.SetTableName(cfg.table)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}
	if err := goose.UpContext(ctx, sqlDB, cfg.dir); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}
	return nil
}

type gooseLogger struct{ log *slog.Logger }

func (g gooseLogger) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...), slog.String("component", "migrations"))
}

// Fatalf only logs; goose returns the error to Migrate.
func (g gooseLogger) Fatalf(format string, args ...any) {
	g.log.Error(fmt.Sprintf(format, args...), slog.String("component", "migrations"))
}
