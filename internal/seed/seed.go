// Package seed resets the catalog collections to the fixed demo content.
package seed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/repository"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/logger"
)

// Summary reports what one run did.
type Summary struct {
	Cleared map[string]int64
	FAQs    int
	Blogs   int
	Gallery int
}

// Seeder clears products, blogs, gallery and faqs, then inserts the fixed
// FAQ, blog and gallery sets. Products are cleared but not re-seeded.
// Phases run in order without rollback; a failure leaves earlier phases applied.
type Seeder struct {
	store *repository.Store
	out   io.Writer
	now   func() time.Time
	newID func() string
}

func NewSeeder(store *repository.Store, out io.Writer) *Seeder {
	return &Seeder{store: store, out: out, now: time.Now, newID: uuid.NewString}
}

type clearer interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// Run executes one seeding pass.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	fmt.Fprintln(s.out, "Seeding database...")
	createdAt := catalog.Timestamp(s.now())
	sum := &Summary{Cleared: map[string]int64{}}

	for _, c := range []struct {
		name string
		repo clearer
	}{
		{catalog.ProductsCollection, s.store.Products},
		{catalog.BlogsCollection, s.store.Blogs},
		{catalog.GalleryCollection, s.store.Gallery},
		{catalog.FAQsCollection, s.store.FAQs},
	} {
		n, err := c.repo.DeleteAll(ctx)
		if err != nil {
			return sum, errors.Wrapf(err, "clear %s", c.name)
		}
		sum.Cleared[c.name] = n
		logger.Debugf("seed: cleared %d documents from %s", n, c.name)
	}

	fq := faqs()
	faqRecs := make([]*catalog.FAQ, 0, len(fq))
	for i := range fq {
		fq[i].ID = s.newID()
		faqRecs = append(faqRecs, &fq[i])
	}
	if err := s.store.FAQs.InsertMany(ctx, faqRecs); err != nil {
		return sum, errors.Wrap(err, "seed faqs")
	}
	sum.FAQs = len(faqRecs)
	fmt.Fprintf(s.out, "✓ Seeded %d FAQs\n", sum.FAQs)

	bl := blogs()
	blogRecs := make([]*catalog.Blog, 0, len(bl))
	for i := range bl {
		bl[i].ID = s.newID()
		bl[i].CreatedAt = createdAt
		blogRecs = append(blogRecs, &bl[i])
	}
	if err := s.store.Blogs.InsertMany(ctx, blogRecs); err != nil {
		return sum, errors.Wrap(err, "seed blogs")
	}
	sum.Blogs = len(blogRecs)
	fmt.Fprintf(s.out, "✓ Seeded %d blogs\n", sum.Blogs)

	gl := galleryImages()
	galleryRecs := make([]*catalog.GalleryImage, 0, len(gl))
	for i := range gl {
		gl[i].ID = s.newID()
		galleryRecs = append(galleryRecs, &gl[i])
	}
	if err := s.store.Gallery.InsertMany(ctx, galleryRecs); err != nil {
		return sum, errors.Wrap(err, "seed gallery")
	}
	sum.Gallery = len(galleryRecs)
	fmt.Fprintf(s.out, "✓ Seeded %d gallery images\n", sum.Gallery)

	fmt.Fprintln(s.out, "✅ Database seeding completed successfully!")
	logger.Infof("seed: faqs=%d blogs=%d gallery=%d", sum.FAQs, sum.Blogs, sum.Gallery)
	return sum, nil
}
