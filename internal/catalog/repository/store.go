package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog"
)

// Store groups one repository per collection. It is built once per process
// and handed to the service and the seed job.
type Store struct {
	Products  Repository[catalog.Product]
	Blogs     Repository[catalog.Blog]
	Gallery   Repository[catalog.GalleryImage]
	FAQs      Repository[catalog.FAQ]
	Contacts  Repository[catalog.ContactSubmission]
	Inquiries Repository[catalog.InquirySubmission]
}

type indexer interface {
	EnsureIndex(ctx context.Context) error
}

func newMongoStore(db *mongo.Database) *Store {
	return &Store{
		Products:  NewMongoRepo[catalog.Product](db.Collection(catalog.ProductsCollection)),
		Blogs:     NewMongoRepo[catalog.Blog](db.Collection(catalog.BlogsCollection)),
		Gallery:   NewMongoRepo[catalog.GalleryImage](db.Collection(catalog.GalleryCollection)),
		FAQs:      NewMongoRepo[catalog.FAQ](db.Collection(catalog.FAQsCollection)),
		Contacts:  NewMongoRepo[catalog.ContactSubmission](db.Collection(catalog.ContactsCollection)),
		Inquiries: NewMongoRepo[catalog.InquirySubmission](db.Collection(catalog.InquiriesCollection)),
	}
}

// NewMongoStore returns a Store backed by collections of db and makes sure
// every collection has its unique id index.
func NewMongoStore(ctx context.Context, db *mongo.Database) (*Store, error) {
	s := newMongoStore(db)
	if err := s.ensureIndexes(ctx, true); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMongoCatalogStore is NewMongoStore for the seed job: only products,
// blogs, gallery and faqs get their index. The submission collections are
// left untouched.
func NewMongoCatalogStore(ctx context.Context, db *mongo.Database) (*Store, error) {
	s := newMongoStore(db)
	if err := s.ensureIndexes(ctx, false); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context, withSubmissions bool) error {
	repos := []interface{}{s.Products, s.Blogs, s.Gallery, s.FAQs}
	if withSubmissions {
		repos = append(repos, s.Contacts, s.Inquiries)
	}
	for _, r := range repos {
		ix, ok := r.(indexer)
		if !ok {
			continue
		}
		if err := ix.EnsureIndex(ctx); err != nil {
			return err
		}
	}
	return nil
}

// NewMemoryStore returns a Store with in-memory repositories.
func NewMemoryStore() *Store {
	return &Store{
		Products:  NewMemoryRepo[catalog.Product](),
		Blogs:     NewMemoryRepo[catalog.Blog](),
		Gallery:   NewMemoryRepo[catalog.GalleryImage](),
		FAQs:      NewMemoryRepo[catalog.FAQ](),
		Contacts:  NewMemoryRepo[catalog.ContactSubmission](),
		Inquiries: NewMemoryRepo[catalog.InquirySubmission](),
	}
}
