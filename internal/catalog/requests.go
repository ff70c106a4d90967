package catalog

// Request schemas for the create endpoints. Required strings are pointers so
// that a missing or null field fails `binding:"required"` while an empty
// string is still accepted. Fields not listed here are dropped on decode.

import (
	"encoding/json"
	"reflect"
)

// StrictBool decodes like bool but rejects JSON null. An absent field keeps
// the zero value.
type StrictBool bool

func (b *StrictBool) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(true)}
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = StrictBool(v)
	return nil
}

type ProductCreate struct {
	Category      *string    `json:"category" binding:"required"`
	NameEn        *string    `json:"name_en" binding:"required"`
	NameFa        *string    `json:"name_fa" binding:"required"`
	NamePs        *string    `json:"name_ps" binding:"required"`
	DescriptionEn *string    `json:"description_en"`
	DescriptionFa *string    `json:"description_fa"`
	DescriptionPs *string    `json:"description_ps"`
	ImageURL      *string    `json:"image_url" binding:"required"`
	Featured      StrictBool `json:"featured"`
}

// Product builds the stored record with the given id.
func (r ProductCreate) Product(id string) Product {
	return Product{
		ID:            id,
		Category:      deref(r.Category),
		NameEn:        deref(r.NameEn),
		NameFa:        deref(r.NameFa),
		NamePs:        deref(r.NamePs),
		DescriptionEn: r.DescriptionEn,
		DescriptionFa: r.DescriptionFa,
		DescriptionPs: r.DescriptionPs,
		ImageURL:      deref(r.ImageURL),
		Featured:      bool(r.Featured),
	}
}

type BlogCreate struct {
	TitleEn   *string `json:"title_en" binding:"required"`
	TitleFa   *string `json:"title_fa" binding:"required"`
	TitlePs   *string `json:"title_ps" binding:"required"`
	ExcerptEn *string `json:"excerpt_en" binding:"required"`
	ExcerptFa *string `json:"excerpt_fa" binding:"required"`
	ExcerptPs *string `json:"excerpt_ps" binding:"required"`
	ContentEn *string `json:"content_en" binding:"required"`
	ContentFa *string `json:"content_fa" binding:"required"`
	ContentPs *string `json:"content_ps" binding:"required"`
	ImageURL  *string `json:"image_url" binding:"required"`
}

func (r BlogCreate) Blog(id, createdAt string) Blog {
	return Blog{
		ID:        id,
		TitleEn:   deref(r.TitleEn),
		TitleFa:   deref(r.TitleFa),
		TitlePs:   deref(r.TitlePs),
		ExcerptEn: deref(r.ExcerptEn),
		ExcerptFa: deref(r.ExcerptFa),
		ExcerptPs: deref(r.ExcerptPs),
		ContentEn: deref(r.ContentEn),
		ContentFa: deref(r.ContentFa),
		ContentPs: deref(r.ContentPs),
		ImageURL:  deref(r.ImageURL),
		CreatedAt: createdAt,
	}
}

type GalleryImageCreate struct {
	ImageURL *string `json:"image_url" binding:"required"`
	Category *string `json:"category" binding:"required"`
	AltEn    *string `json:"alt_en" binding:"required"`
	AltFa    *string `json:"alt_fa" binding:"required"`
	AltPs    *string `json:"alt_ps" binding:"required"`
}

func (r GalleryImageCreate) GalleryImage(id string) GalleryImage {
	return GalleryImage{
		ID:       id,
		ImageURL: deref(r.ImageURL),
		Category: deref(r.Category),
		AltEn:    deref(r.AltEn),
		AltFa:    deref(r.AltFa),
		AltPs:    deref(r.AltPs),
	}
}

type ContactSubmissionCreate struct {
	Name    *string `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"required"`
	Phone   *string `json:"phone"`
	Message *string `json:"message" binding:"required"`
}

func (r ContactSubmissionCreate) ContactSubmission(id, createdAt string) ContactSubmission {
	return ContactSubmission{
		ID:        id,
		Name:      deref(r.Name),
		Email:     deref(r.Email),
		Phone:     r.Phone,
		Message:   deref(r.Message),
		CreatedAt: createdAt,
	}
}

type InquirySubmissionCreate struct {
	Name            *string `json:"name" binding:"required"`
	Email           *string `json:"email" binding:"required"`
	Phone           *string `json:"phone"`
	ProductCategory *string `json:"product_category" binding:"required"`
	Quantity        *string `json:"quantity"`
	Message         *string `json:"message" binding:"required"`
}

func (r InquirySubmissionCreate) InquirySubmission(id, createdAt string) InquirySubmission {
	return InquirySubmission{
		ID:              id,
		Name:            deref(r.Name),
		Email:           deref(r.Email),
		Phone:           r.Phone,
		ProductCategory: deref(r.ProductCategory),
		Quantity:        r.Quantity,
		Message:         deref(r.Message),
		CreatedAt:       createdAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
