package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/service"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/logger"
)

// RootMessage is the liveness payload served at the API prefix root.
const RootMessage = "Golnavaz API"

// Handler exposes the catalog service over HTTP.
type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	registerJSONFieldNames()
	return &Handler{svc: svc}
}

// Register mounts the catalog routes on rg (normally the /api group).
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Root)
	rg.GET("/", h.Root)

	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
	rg.POST("/products", h.CreateProduct)

	rg.GET("/blogs", h.ListBlogs)
	rg.GET("/blogs/:id", h.GetBlog)
	rg.POST("/blogs", h.CreateBlog)

	rg.GET("/gallery", h.ListGallery)
	rg.POST("/gallery", h.CreateGalleryImage)

	rg.GET("/faqs", h.ListFAQs)

	rg.POST("/contact", h.SubmitContact)
	rg.POST("/inquiry", h.SubmitInquiry)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

func (h *Handler) ListProducts(c *gin.Context) {
	list, err := h.svc.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		serverError(c, "list products", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		lookupError(c, "Product not found", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req catalog.ProductCreate
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		serverError(c, "create product", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListBlogs(c *gin.Context) {
	list, err := h.svc.ListBlogs(c.Request.Context())
	if err != nil {
		serverError(c, "list blogs", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBlog(c *gin.Context) {
	b, err := h.svc.GetBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		lookupError(c, "Blog not found", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) CreateBlog(c *gin.Context) {
	var req catalog.BlogCreate
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.svc.CreateBlog(c.Request.Context(), req)
	if err != nil {
		serverError(c, "create blog", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) ListGallery(c *gin.Context) {
	list, err := h.svc.ListGallery(c.Request.Context(), c.Query("category"))
	if err != nil {
		serverError(c, "list gallery", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateGalleryImage(c *gin.Context) {
	var req catalog.GalleryImageCreate
	if !bindJSON(c, &req) {
		return
	}
	g, err := h.svc.CreateGalleryImage(c.Request.Context(), req)
	if err != nil {
		serverError(c, "create gallery image", err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *Handler) ListFAQs(c *gin.Context) {
	list, err := h.svc.ListFAQs(c.Request.Context())
	if err != nil {
		serverError(c, "list faqs", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) SubmitContact(c *gin.Context) {
	var req catalog.ContactSubmissionCreate
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.svc.SubmitContact(c.Request.Context(), req)
	if err != nil {
		serverError(c, "submit contact", err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req catalog.InquirySubmissionCreate
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.svc.SubmitInquiry(c.Request.Context(), req)
	if err != nil {
		serverError(c, "submit inquiry", err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func lookupError(c *gin.Context, msg string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
		return
	}
	serverError(c, "lookup", err)
}

func serverError(c *gin.Context, op string, err error) {
	logger.Errorf("%s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
