// Package db connects to PostgreSQL through a pgx pool and applies the
// embedded goose migrations.
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := db.Migrate(ctx, pool, migrations.FS, db.WithMigrationsTable(cfg.MigrationsTable)); err != nil {
//	    return err
//	}
package db
