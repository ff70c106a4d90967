package catalog

import "time"

// Collection names in the document store.
const (
	ProductsCollection  = "products"
	BlogsCollection     = "blogs"
	GalleryCollection   = "gallery"
	FAQsCollection      = "faqs"
	ContactsCollection  = "contact_submissions"
	InquiriesCollection = "inquiry_submissions"
)

// TimestampLayout is the stored created_at format. Fixed width keeps lexical
// order equal to chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Timestamp formats t in UTC using TimestampLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Product is a catalog item. Products carry no created_at.
type Product struct {
	ID            string  `json:"id" bson:"id"`
	Category      string  `json:"category" bson:"category"`
	NameEn        string  `json:"name_en" bson:"name_en"`
	NameFa        string  `json:"name_fa" bson:"name_fa"`
	NamePs        string  `json:"name_ps" bson:"name_ps"`
	DescriptionEn *string `json:"description_en" bson:"description_en"`
	DescriptionFa *string `json:"description_fa" bson:"description_fa"`
	DescriptionPs *string `json:"description_ps" bson:"description_ps"`
	ImageURL      string  `json:"image_url" bson:"image_url"`
	Featured      bool    `json:"featured" bson:"featured"`
}

type Blog struct {
	ID        string `json:"id" bson:"id"`
	TitleEn   string `json:"title_en" bson:"title_en"`
	TitleFa   string `json:"title_fa" bson:"title_fa"`
	TitlePs   string `json:"title_ps" bson:"title_ps"`
	ExcerptEn string `json:"excerpt_en" bson:"excerpt_en"`
	ExcerptFa string `json:"excerpt_fa" bson:"excerpt_fa"`
	ExcerptPs string `json:"excerpt_ps" bson:"excerpt_ps"`
	ContentEn string `json:"content_en" bson:"content_en"`
	ContentFa string `json:"content_fa" bson:"content_fa"`
	ContentPs string `json:"content_ps" bson:"content_ps"`
	ImageURL  string `json:"image_url" bson:"image_url"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

type GalleryImage struct {
	ID       string `json:"id" bson:"id"`
	ImageURL string `json:"image_url" bson:"image_url"`
	Category string `json:"category" bson:"category"`
	AltEn    string `json:"alt_en" bson:"alt_en"`
	AltFa    string `json:"alt_fa" bson:"alt_fa"`
	AltPs    string `json:"alt_ps" bson:"alt_ps"`
}

type FAQ struct {
	ID         string `json:"id" bson:"id"`
	QuestionEn string `json:"question_en" bson:"question_en"`
	QuestionFa string `json:"question_fa" bson:"question_fa"`
	QuestionPs string `json:"question_ps" bson:"question_ps"`
	AnswerEn   string `json:"answer_en" bson:"answer_en"`
	AnswerFa   string `json:"answer_fa" bson:"answer_fa"`
	AnswerPs   string `json:"answer_ps" bson:"answer_ps"`
}

// ContactSubmission is write-only; there is no read endpoint.
type ContactSubmission struct {
	ID        string  `json:"id" bson:"id"`
	Name      string  `json:"name" bson:"name"`
	Email     string  `json:"email" bson:"email"`
	Phone     *string `json:"phone" bson:"phone"`
	Message   string  `json:"message" bson:"message"`
	CreatedAt string  `json:"created_at" bson:"created_at"`
}

// InquirySubmission is write-only; there is no read endpoint.
type InquirySubmission struct {
	ID              string  `json:"id" bson:"id"`
	Name            string  `json:"name" bson:"name"`
	Email           string  `json:"email" bson:"email"`
	Phone           *string `json:"phone" bson:"phone"`
	ProductCategory string  `json:"product_category" bson:"product_category"`
	Quantity        *string `json:"quantity" bson:"quantity"`
	Message         string  `json:"message" bson:"message"`
	CreatedAt       string  `json:"created_at" bson:"created_at"`
}
