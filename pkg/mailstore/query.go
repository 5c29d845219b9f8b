package mailstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrQueryFailed      = errors.New("mailstore: query failed")
	ErrInvalidPredicate = errors.New("mailstore: invalid predicate")
)

// Field names a filterable column.
type Field string

const (
	FieldToEmail    Field = "receive_email"
	FieldFromEmail  Field = "send_email"
	FieldType       Field = "type"
	FieldStatus     Field = "is_del"
	FieldCreateTime Field = "create_time"
)

// Op is a comparison operator.
type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Predicate compares one field against a value. Value must be a string for
// address fields, Type or Status for their fields and time.Time for
// FieldCreateTime.
type Predicate struct {
	Field Field
	Op    Op
	Value any
}

func Eq(f Field, v any) Predicate  { return Predicate{Field: f, Op: OpEq, Value: v} }
func Gte(f Field, v any) Predicate { return Predicate{Field: f, Op: OpGte, Value: v} }
func Lte(f Field, v any) Predicate { return Predicate{Field: f, Op: OpLte, Value: v} }

func (p Predicate) validate() error {
	switch p.Op {
	case OpEq, OpGte, OpLte:
	default:
		return fmt.Errorf("%w: unknown operator %q", ErrInvalidPredicate, p.Op)
	}

	var ok bool
	switch p.Field {
	case FieldToEmail, FieldFromEmail:
		_, ok = p.Value.(string)
		ok = ok && p.Op == OpEq
	case FieldType:
		_, ok = p.Value.(Type)
		ok = ok && p.Op == OpEq
	case FieldStatus:
		_, ok = p.Value.(Status)
		ok = ok && p.Op == OpEq
	case FieldCreateTime:
		_, ok = p.Value.(time.Time)
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidPredicate, p.Field)
	}
	if !ok {
		return fmt.Errorf("%w: %s %s %T", ErrInvalidPredicate, p.Field, p.Op, p.Value)
	}
	return nil
}

// Match reports whether e satisfies p. Invalid predicates never match.
func (p Predicate) Match(e Email) bool {
	if p.validate() != nil {
		return false
	}
	switch p.Field {
	case FieldToEmail:
		return e.ToEmail == p.Value.(string)
	case FieldFromEmail:
		return e.FromEmail == p.Value.(string)
	case FieldType:
		return e.Type == p.Value.(Type)
	case FieldStatus:
		return e.IsDel == p.Value.(Status)
	case FieldCreateTime:
		v := p.Value.(time.Time)
		switch p.Op {
		case OpEq:
			return e.CreateTime.Equal(v)
		case OpGte:
			return !e.CreateTime.Before(v)
		case OpLte:
			return !e.CreateTime.After(v)
		}
	}
	return false
}

// Query selects emails matching every predicate, newest id first.
type Query struct {
	Where []Predicate
	Limit int
}

// Match reports whether e satisfies every predicate.
func (q Query) Match(e Email) bool {
	for _, p := range q.Where {
		if !p.Match(e) {
			return false
		}
	}
	return true
}

// Validate checks every predicate and the limit.
func (q Query) Validate() error {
	for _, p := range q.Where {
		if err := p.validate(); err != nil {
			return err
		}
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidPredicate)
	}
	return nil
}

const selectColumns = "SELECT email_id, send_email, name, receive_email, subject, text, content, type, is_del, create_time FROM email"

// SQL renders q as a parameterised PostgreSQL statement.
func (q Query) SQL() (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString(selectColumns)

	args := make([]any, 0, len(q.Where)+1)
	for i, p := range q.Where {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, sqlValue(p.Value))
		b.WriteString(string(p.Field))
		b.WriteByte(' ')
		b.WriteString(string(p.Op))
		b.WriteString(" $")
		b.WriteString(strconv.Itoa(len(args)))
	}

	args = append(args, q.Limit)
	b.WriteString(" ORDER BY email_id DESC LIMIT $")
	b.WriteString(strconv.Itoa(len(args)))

	return b.String(), args, nil
}

func sqlValue(v any) any {
	switch x := v.(type) {
	case Type:
		return int(x)
	case Status:
		return int(x)
	case time.Time:
		return x.UTC()
	default:
		return v
	}
}

// Store runs queries against stored email.
type Store interface {
	Find(ctx context.Context, q Query) ([]Email, error)
}
