package mailstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailgate/pkg/mailstore"
)

func TestQuery_SQL(t *testing.T) {
	t.Parallel()

	since := time.Date(2025, 5, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	q := mailstore.Query{
		Where: []mailstore.Predicate{
			mailstore.Eq(mailstore.FieldToEmail, "user@example.com"),
			mailstore.Eq(mailstore.FieldType, mailstore.TypeReceive),
			mailstore.Eq(mailstore.FieldStatus, mailstore.StatusNormal),
			mailstore.Gte(mailstore.FieldCreateTime, since),
		},
		Limit: 10,
	}

	sql, args, err := q.SQL()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT email_id, send_email, name, receive_email, subject, text, content, type, is_del, create_time FROM email"+
			" WHERE receive_email = $1 AND type = $2 AND is_del = $3 AND create_time >= $4"+
			" ORDER BY email_id DESC LIMIT $5",
		sql)
	require.Equal(t, []any{"user@example.com", 1, 0, since.UTC(), 10}, args)
}

func TestQuery_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    mailstore.Query
	}{
		{name: "zero limit", q: mailstore.Query{}},
		{name: "unknown field", q: mailstore.Query{Limit: 1, Where: []mailstore.Predicate{mailstore.Eq("subject; DROP TABLE email", "x")}}},
		{name: "unknown op", q: mailstore.Query{Limit: 1, Where: []mailstore.Predicate{{Field: mailstore.FieldToEmail, Op: "LIKE", Value: "x"}}}},
		{name: "wrong value type", q: mailstore.Query{Limit: 1, Where: []mailstore.Predicate{mailstore.Eq(mailstore.FieldType, 1)}}},
		{name: "range on address", q: mailstore.Query{Limit: 1, Where: []mailstore.Predicate{mailstore.Gte(mailstore.FieldFromEmail, "a")}}},
		{name: "string time", q: mailstore.Query{Limit: 1, Where: []mailstore.Predicate{mailstore.Gte(mailstore.FieldCreateTime, "2025-01-01")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tt.q.Validate(), mailstore.ErrInvalidPredicate)
			_, _, err := tt.q.SQL()
			require.ErrorIs(t, err, mailstore.ErrInvalidPredicate)
		})
	}
}

func TestPredicate_Match(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	e := mailstore.Email{
		FromEmail:  "sender@example.org",
		ToEmail:    "user@example.com",
		Type:       mailstore.TypeReceive,
		IsDel:      mailstore.StatusNormal,
		CreateTime: at,
	}

	tests := []struct {
		name string
		p    mailstore.Predicate
		want bool
	}{
		{"to match", mailstore.Eq(mailstore.FieldToEmail, "user@example.com"), true},
		{"to is case sensitive", mailstore.Eq(mailstore.FieldToEmail, "USER@example.com"), false},
		{"from match", mailstore.Eq(mailstore.FieldFromEmail, "sender@example.org"), true},
		{"type mismatch", mailstore.Eq(mailstore.FieldType, mailstore.TypeSend), false},
		{"deleted mismatch", mailstore.Eq(mailstore.FieldStatus, mailstore.StatusDeleted), false},
		{"gte inclusive", mailstore.Gte(mailstore.FieldCreateTime, at), true},
		{"lte inclusive", mailstore.Lte(mailstore.FieldCreateTime, at), true},
		{"gte later", mailstore.Gte(mailstore.FieldCreateTime, at.Add(time.Second)), false},
		{"lte earlier", mailstore.Lte(mailstore.FieldCreateTime, at.Add(-time.Second)), false},
		{"invalid never matches", mailstore.Eq(mailstore.FieldType, "1"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.p.Match(e))
		})
	}
}
