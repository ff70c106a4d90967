package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate record id")
)

// MaxResults caps every Find call.
const MaxResults = 1000

// Query selects records by exact string equality on top-level fields and
// optionally orders them by one string field, descending. An empty SortDesc
// keeps storage order.
type Query struct {
	Filter   map[string]string
	SortDesc string
}

// Repository is the persistence surface of one collection. Records are keyed
// by their "id" field.
type Repository[T any] interface {
	Insert(ctx context.Context, rec *T) error
	InsertMany(ctx context.Context, recs []*T) error
	FindByID(ctx context.Context, id string) (*T, error)
	Find(ctx context.Context, q Query) ([]*T, error)
	DeleteAll(ctx context.Context) (int64, error)
}
