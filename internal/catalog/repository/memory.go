package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// MemoryRepo is an in-memory Repository used by tests and local runs without
// MongoDB. Records are kept BSON-encoded in insertion order so filtering and
// sorting see the same field names as the Mongo-backed repo.
type MemoryRepo[T any] struct {
	mu   sync.RWMutex
	docs []bson.Raw
	ids  map[string]struct{}
}

func NewMemoryRepo[T any]() *MemoryRepo[T] {
	return &MemoryRepo[T]{ids: make(map[string]struct{})}
}

func encode[T any](rec *T) (bson.Raw, string, error) {
	b, err := bson.Marshal(rec)
	if err != nil {
		return nil, "", err
	}
	raw := bson.Raw(b)
	id, _ := raw.Lookup("id").StringValueOK()
	return raw, id, nil
}

func decode[T any](raw bson.Raw) (*T, error) {
	var rec T
	if err := bson.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (m *MemoryRepo[T]) Insert(ctx context.Context, rec *T) error {
	return m.InsertMany(ctx, []*T{rec})
}

func (m *MemoryRepo[T]) InsertMany(_ context.Context, recs []*T) error {
	raws := make([]bson.Raw, 0, len(recs))
	batch := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		raw, id, err := encode(r)
		if err != nil {
			return err
		}
		if _, dup := batch[id]; dup {
			return ErrDuplicateID
		}
		batch[id] = struct{}{}
		raws = append(raws, raw)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id := range batch {
		if _, dup := m.ids[id]; dup {
			return ErrDuplicateID
		}
	}
	for id := range batch {
		m.ids[id] = struct{}{}
	}
	m.docs = append(m.docs, raws...)
	return nil
}

func (m *MemoryRepo[T]) FindByID(_ context.Context, id string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, raw := range m.docs {
		if v, ok := raw.Lookup("id").StringValueOK(); ok && v == id {
			return decode[T](raw)
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo[T]) Find(_ context.Context, q Query) ([]*T, error) {
	m.mu.RLock()
	matched := make([]bson.Raw, 0, len(m.docs))
	for _, raw := range m.docs {
		if matches(raw, q.Filter) {
			matched = append(matched, raw)
		}
	}
	m.mu.RUnlock()

	if q.SortDesc != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			a, _ := matched[i].Lookup(q.SortDesc).StringValueOK()
			b, _ := matched[j].Lookup(q.SortDesc).StringValueOK()
			return a > b
		})
	}
	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}

	out := make([]*T, 0, len(matched))
	for _, raw := range matched {
		rec, err := decode[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemoryRepo[T]) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.docs))
	m.docs = nil
	m.ids = make(map[string]struct{})
	return n, nil
}

// Len reports how many records are stored.
func (m *MemoryRepo[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func matches(raw bson.Raw, filter map[string]string) bool {
	for k, want := range filter {
		got, ok := raw.Lookup(k).StringValueOK()
		if !ok || got != want {
			return false
		}
	}
	return true
}
