// Package db connects to PostgreSQL with pgx, applies goose migrations and
// provides the readiness check and shutdown hook for the pool.
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := db.Migrate(ctx, pool, overrides.Migrations(), cfg.MigrationsTable, log); err != nil {
//		return err
//	}
package db
