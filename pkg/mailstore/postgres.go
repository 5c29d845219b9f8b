package mailstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore reads the email table.
type PostgresStore struct {
	db Querier
}

func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Find(ctx context.Context, q Query) ([]Email, error) {
	sql, args, err := q.SQL()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	emails, err := pgx.CollectRows(rows, scanEmail)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return emails, nil
}

// scanEmail maps the selectColumns order. Nullable text columns read as "".
func scanEmail(row pgx.CollectableRow) (Email, error) {
	var (
		e                                  Email
		from, name, subject, text, content *string
	)
	err := row.Scan(&e.ID, &from, &name, &e.ToEmail, &subject, &text, &content, &e.Type, &e.IsDel, &e.CreateTime)
	if err != nil {
		return Email{}, err
	}
	e.FromEmail = deref(from)
	e.FromName = deref(name)
	e.Subject = deref(subject)
	e.Text = deref(text)
	e.Content = deref(content)
	return e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
