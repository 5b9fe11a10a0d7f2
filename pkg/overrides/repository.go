package overrides

import (
	"context"
	"embed"
	"errors"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/lexicon/pkg/db"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the goose migrations for the overrides table.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// DB is the subset of *pgxpool.Pool used by the repository.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository persists translation overrides in PostgreSQL.
type Repository struct {
	db DB
}

// NewRepository creates a repository over a pgx pool.
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

const (
	listQuery = `SELECT locale, translation_key, value, updated_at
		FROM translation_overrides
		ORDER BY locale, translation_key`

	upsertQuery = `INSERT INTO translation_overrides (locale, translation_key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (locale, translation_key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	deleteQuery = `DELETE FROM translation_overrides WHERE locale = $1 AND translation_key = $2`
)

// List returns every override ordered by locale and key.
func (r *Repository) List(ctx context.Context) ([]Override, error) {
	rows, err := r.db.Query(ctx, listQuery)
	if err != nil {
		return nil, errors.Join(ErrLoad, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[Override])
	if err != nil {
		return nil, errors.Join(ErrLoad, err)
	}
	return list, nil
}

// Load builds the extras store from every stored override.
// It satisfies i18n.Source.
func (r *Repository) Load(ctx context.Context) (i18n.Store, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildStore(list), nil
}

// Upsert inserts or replaces a single override.
func (r *Repository) Upsert(ctx context.Context, o Override) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, upsertQuery, o.Locale, o.Key, o.Value); err != nil {
		return errors.Join(ErrSave, err)
	}
	return nil
}

// Import upserts a nested translation tree for one locale in a single transaction.
// It returns the number of stored values.
func (r *Repository) Import(ctx context.Context, locale string, tree map[string]any) (int, error) {
	list := Flatten(locale, tree)
	for i := range list {
		if err := list[i].Validate(); err != nil {
			return 0, err
		}
	}

	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, o := range list {
			batch.Queue(upsertQuery, o.Locale, o.Key, o.Value)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, errors.Join(ErrSave, err)
	}
	return len(list), nil
}

// Delete removes an override. It returns ErrNotFound when nothing was deleted.
func (r *Repository) Delete(ctx context.Context, locale, key string) error {
	tag, err := r.db.Exec(ctx, deleteQuery, locale, key)
	if err != nil {
		return errors.Join(ErrDelete, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ i18n.Source = (*Repository)(nil)
