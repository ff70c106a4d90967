package seed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/repository"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/service"
)

func TestRunSeedsFixedContent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := service.NewService(store)

	// pre-existing data is wiped, products included
	_, err := svc.CreateProduct(ctx, catalog.ProductCreate{
		Category: strp("pickles"), NameEn: strp("a"), NameFa: strp("b"), NamePs: strp("c"), ImageURL: strp("u"),
	})
	require.NoError(t, err)

	var out bytes.Buffer
	s := NewSeeder(store, &out)
	s.now = func() time.Time { return time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC) }
	sum, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Cleared[catalog.ProductsCollection])
	assert.Equal(t, 5, sum.FAQs)
	assert.Equal(t, 3, sum.Blogs)
	assert.Equal(t, 8, sum.Gallery)

	assert.Contains(t, out.String(), "✓ Seeded 5 FAQs\n")
	assert.Contains(t, out.String(), "✓ Seeded 3 blogs\n")
	assert.Contains(t, out.String(), "✓ Seeded 8 gallery images\n")
	assert.Contains(t, out.String(), "✅ Database seeding completed successfully!")

	products, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, products)

	fq, err := svc.ListFAQs(ctx)
	require.NoError(t, err)
	want := faqs()
	require.Len(t, fq, len(want))
	require.Len(t, fq, 5)
	for i, f := range fq {
		assert.NotEmpty(t, f.ID)
		got := *f
		got.ID = ""
		assert.Equal(t, want[i], got, "faq %d", i)
	}
	assert.Equal(t, "What makes your products special?", fq[0].QuestionEn)
	assert.Equal(t, "چه چیزی محصولات شما را خاص می‌کند؟", fq[0].QuestionFa)
	assert.Equal(t, "ستاسو محصولات څه ځانګړی کوي؟", fq[0].QuestionPs)
	assert.Equal(t, "What is your return policy?", fq[4].QuestionEn)
	for _, f := range fq {
		assert.NotEmpty(t, f.AnswerEn)
		assert.NotEmpty(t, f.AnswerFa)
		assert.NotEmpty(t, f.AnswerPs)
	}

	bl, err := svc.ListBlogs(ctx)
	require.NoError(t, err)
	require.Len(t, bl, 3)
	for _, b := range bl {
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, "2024-03-20T10:00:00.000000+00:00", b.CreatedAt)
	}

	gl, err := svc.ListGallery(ctx, service.AllCategories)
	require.NoError(t, err)
	require.Len(t, gl, 8)
	vin, err := svc.ListGallery(ctx, "vinegars")
	require.NoError(t, err)
	assert.Len(t, vin, 3)
}

func TestRunTwiceReplacesContent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	var out bytes.Buffer

	_, err := NewSeeder(store, &out).Run(ctx)
	require.NoError(t, err)
	first, err := store.FAQs.Find(ctx, repository.Query{})
	require.NoError(t, err)

	sum, err := NewSeeder(store, &out).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), sum.Cleared[catalog.FAQsCollection])
	second, err := store.FAQs.Find(ctx, repository.Query{})
	require.NoError(t, err)
	require.Len(t, second, 5)

	ids := map[string]bool{}
	for _, f := range first {
		ids[f.ID] = true
	}
	for _, f := range second {
		assert.False(t, ids[f.ID], "id %s reused across runs", f.ID)
	}
}

type failingRepo struct {
	repository.Repository[catalog.Blog]
}

func (failingRepo) DeleteAll(context.Context) (int64, error) {
	return 0, errors.New("connection reset")
}

func TestRunAbortsOnStorageError(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	store.Blogs = failingRepo{store.Blogs}
	var out bytes.Buffer

	_, err := NewSeeder(store, &out).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear blogs")
	assert.NotContains(t, out.String(), "completed successfully")

	// faqs phase never ran
	n, err := store.FAQs.Find(ctx, repository.Query{})
	require.NoError(t, err)
	assert.Empty(t, n)
}

func strp(s string) *string { return &s }
