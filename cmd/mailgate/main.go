// Command mailgate runs the external mail gateway HTTP server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/mailgate"
	"github.com/dmitrymomot/mailgate/gateway"
	"github.com/dmitrymomot/mailgate/middlewares"
	"github.com/dmitrymomot/mailgate/migrations"
	"github.com/dmitrymomot/mailgate/pkg/cache"
	"github.com/dmitrymomot/mailgate/pkg/db"
	"github.com/dmitrymomot/mailgate/pkg/logger"
	"github.com/dmitrymomot/mailgate/pkg/mailer/resend"
	"github.com/dmitrymomot/mailgate/pkg/mailstore"
	"github.com/dmitrymomot/mailgate/pkg/redis"
	"github.com/dmitrymomot/mailgate/pkg/settings"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, os.Stdout, middlewares.RequestIDExtractor()).With("app", "mailgate")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("application error", "error", err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	if cfg.APIKey == "" {
		log.Warn("INTERNAL_API_KEY is not set, every external request will fail")
	}
	if cfg.SenderEmail == "" {
		log.Warn("SYSTEM_SENDER_EMAIL is not set, send-email will fail")
	}

	runOpts := []mailgate.RunOption{
		mailgate.Logger(log),
		mailgate.ShutdownTimeout(cfg.ShutdownTimeout),
	}
	var healthOpts []mailgate.HealthOption

	var (
		emails   mailstore.Store
		source   settings.Store
		settingC cache.Cache[settings.Settings]
	)

	if cfg.Database.Enabled() {
		pool, err := db.Connect(ctx, cfg.Database)
		if err != nil {
			return err
		}
		runOpts = append(runOpts, mailgate.ShutdownHook(db.Shutdown(pool)))
		healthOpts = append(healthOpts, mailgate.WithReadinessCheck("postgres", db.Healthcheck(pool)))

		if cfg.Database.Migrate {
			if err := db.Migrate(ctx, pool, migrations.FS,
				db.WithMigrationsTable(cfg.Database.MigrationsTable),
				db.WithMigrationsLogger(log),
			); err != nil {
				pool.Close()
				return err
			}
		}

		emails = mailstore.NewPostgresStore(pool)
		source = settings.NewPostgresStore(pool)
	} else {
		log.Warn("DATABASE_URL is not set, using in-memory mail store", "settings_file", cfg.SettingsFile)
		emails = mailstore.NewMemory()
		source = settings.NewFileStore(cfg.SettingsFile)
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		runOpts = append(runOpts, mailgate.ShutdownHook(redis.Shutdown(client)))
		healthOpts = append(healthOpts, mailgate.WithReadinessCheck("redis", redis.Healthcheck(client)))
		settingC = newRedisCache(client)
	} else {
		settingC = cache.NewMemory[settings.Settings](cache.WithDefaultTTL(cfg.SettingsCacheTTL))
	}
	runOpts = append(runOpts, mailgate.ShutdownHook(func(context.Context) error {
		return settingC.Close()
	}))

	svc := gateway.NewService(cfg.Config,
		settings.NewCached(source, settingC, cfg.SettingsCacheTTL),
		resend.Factory(nil),
		emails,
		gateway.WithLogger(log),
	)

	app := mailgate.New(
		mailgate.WithLogger(log),
		mailgate.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
		),
		mailgate.WithHandlers(gateway.NewHandler(svc, cfg.APIKey)),
		mailgate.WithErrorHandler(gateway.ErrorHandler),
		mailgate.WithNotFoundHandler(gateway.NotFound),
		mailgate.WithMethodNotAllowedHandler(gateway.MethodNotAllowed),
		mailgate.WithHealthChecks(healthOpts...),
	)

	runOpts = append(runOpts, mailgate.ShutdownHook(func(context.Context) error {
		if !logger.Flush(2 * time.Second) {
			return errors.New("sentry flush timed out")
		}
		return nil
	}))

	log.Info("starting server", "addr", cfg.HTTPAddr)
	return app.Run(cfg.HTTPAddr, runOpts...)
}

func newRedisCache(client goredis.UniversalClient) cache.Cache[settings.Settings] {
	return cache.NewRedis[settings.Settings](client, nil, cache.WithPrefix("mailgate"))
}
