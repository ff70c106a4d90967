package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// hide Mongo's internal _id from every read
var noObjectID = bson.M{"_id": 0}

// MongoRepo implements Repository on a MongoDB collection. Records are looked
// up by their "id" string field, not by _id.
type MongoRepo[T any] struct {
	col *mongo.Collection
}

func NewMongoRepo[T any](col *mongo.Collection) *MongoRepo[T] {
	return &MongoRepo[T]{col: col}
}

// EnsureIndex creates the unique index on "id".
func (m *MongoRepo[T]) EnsureIndex(ctx context.Context) error {
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := m.col.Indexes().CreateOne(ctx, idxModel); err != nil {
		return fmt.Errorf("create id index on %s: %w", m.col.Name(), err)
	}
	return nil
}

func (m *MongoRepo[T]) Insert(ctx context.Context, rec *T) error {
	if _, err := m.col.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (m *MongoRepo[T]) InsertMany(ctx context.Context, recs []*T) error {
	if len(recs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(recs))
	for _, r := range recs {
		docs = append(docs, r)
	}
	if _, err := m.col.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (m *MongoRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var rec T
	err := m.col.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(noObjectID)).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (m *MongoRepo[T]) Find(ctx context.Context, q Query) ([]*T, error) {
	filter := bson.M{}
	for k, v := range q.Filter {
		filter[k] = v
	}
	opts := options.Find().SetProjection(noObjectID).SetLimit(MaxResults)
	if q.SortDesc != "" {
		opts.SetSort(bson.D{{Key: q.SortDesc, Value: -1}})
	}
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo[T]) DeleteAll(ctx context.Context) (int64, error) {
	res, err := m.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
