package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/repository"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/metrics"
)

var (
	ErrNotFound = errors.New("not found")
)

// AllCategories is the gallery category value that disables filtering.
const AllCategories = "all"

// Service implements the catalog operations used by the handler layer. Each
// method performs exactly one storage call.
type Service struct {
	store *repository.Store
	now   func() time.Time
	newID func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

func NewService(store *repository.Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) createdAt() string { return catalog.Timestamp(s.now()) }

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

// ListProducts returns all products, restricted to category when it is non-empty.
func (s *Service) ListProducts(ctx context.Context, category string) ([]*catalog.Product, error) {
	q := repository.Query{}
	if category != "" {
		q.Filter = map[string]string{"category": category}
	}
	return s.store.Products.Find(ctx, q)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	p, err := s.store.Products.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) CreateProduct(ctx context.Context, req catalog.ProductCreate) (*catalog.Product, error) {
	p := req.Product(s.newID())
	if err := s.store.Products.Insert(ctx, &p); err != nil {
		return nil, err
	}
	metrics.RecordsCreated.WithLabelValues(catalog.ProductsCollection).Inc()
	return &p, nil
}

// ListBlogs returns all blogs, newest first.
func (s *Service) ListBlogs(ctx context.Context) ([]*catalog.Blog, error) {
	return s.store.Blogs.Find(ctx, repository.Query{SortDesc: "created_at"})
}

func (s *Service) GetBlog(ctx context.Context, id string) (*catalog.Blog, error) {
	b, err := s.store.Blogs.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return b, nil
}

func (s *Service) CreateBlog(ctx context.Context, req catalog.BlogCreate) (*catalog.Blog, error) {
	b := req.Blog(s.newID(), s.createdAt())
	if err := s.store.Blogs.Insert(ctx, &b); err != nil {
		return nil, err
	}
	metrics.RecordsCreated.WithLabelValues(catalog.BlogsCollection).Inc()
	return &b, nil
}

// ListGallery returns gallery images. An empty category or "all" returns everything.
func (s *Service) ListGallery(ctx context.Context, category string) ([]*catalog.GalleryImage, error) {
	q := repository.Query{}
	if category != "" && category != AllCategories {
		q.Filter = map[string]string{"category": category}
	}
	return s.store.Gallery.Find(ctx, q)
}

func (s *Service) CreateGalleryImage(ctx context.Context, req catalog.GalleryImageCreate) (*catalog.GalleryImage, error) {
	g := req.GalleryImage(s.newID())
	if err := s.store.Gallery.Insert(ctx, &g); err != nil {
		return nil, err
	}
	metrics.RecordsCreated.WithLabelValues(catalog.GalleryCollection).Inc()
	return &g, nil
}

func (s *Service) ListFAQs(ctx context.Context) ([]*catalog.FAQ, error) {
	return s.store.FAQs.Find(ctx, repository.Query{})
}

func (s *Service) SubmitContact(ctx context.Context, req catalog.ContactSubmissionCreate) (*catalog.ContactSubmission, error) {
	c := req.ContactSubmission(s.newID(), s.createdAt())
	if err := s.store.Contacts.Insert(ctx, &c); err != nil {
		return nil, err
	}
	metrics.RecordsCreated.WithLabelValues(catalog.ContactsCollection).Inc()
	return &c, nil
}

func (s *Service) SubmitInquiry(ctx context.Context, req catalog.InquirySubmissionCreate) (*catalog.InquirySubmission, error) {
	in := req.InquirySubmission(s.newID(), s.createdAt())
	if err := s.store.Inquiries.Insert(ctx, &in); err != nil {
		return nil, err
	}
	metrics.RecordsCreated.WithLabelValues(catalog.InquiriesCollection).Inc()
	return &in, nil
}
