package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const selectSettingsSQL = `SELECT resend_tokens FROM setting ORDER BY id LIMIT 1`

// Querier is the subset of pgxpool.Pool used by PostgresStore.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore reads settings from the "setting" table.
type PostgresStore struct {
	db Querier
}

// NewPostgresStore creates a settings store backed by db (usually a *pgxpool.Pool).
func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load implements Store. A missing settings row yields empty settings.
func (s *PostgresStore) Load(ctx context.Context) (Settings, error) {
	var tokens map[string]string
	err := s.db.QueryRow(ctx, selectSettingsSQL).Scan(&tokens)
	if errors.Is(err, pgx.ErrNoRows) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, errors.Join(ErrLoadFailed, err)
	}
	return Settings{ResendTokens: tokens}.normalize(), nil
}
