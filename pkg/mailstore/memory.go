package mailstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	emails []Email
	nextID int64
}

// NewMemory returns a store seeded with emails. Seeds without an ID get one.
func NewMemory(emails ...Email) *Memory {
	m := &Memory{}
	for _, e := range emails {
		m.Add(e)
	}
	return m
}

// Add stores e and returns its id.
func (m *Memory) Add(e Email) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == 0 {
		m.nextID++
		e.ID = m.nextID
	} else if e.ID > m.nextID {
		m.nextID = e.ID
	}
	m.emails = append(m.emails, e)
	return e.ID
}

func (m *Memory) Find(ctx context.Context, q Query) ([]Email, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	out := make([]Email, 0, min(q.Limit, len(m.emails)))
	for _, e := range m.emails {
		if q.Match(e) {
			out = append(out, e)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b Email) int { return cmp.Compare(b.ID, a.ID) })
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*PostgresStore)(nil)
)
