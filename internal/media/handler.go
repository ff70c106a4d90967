// Package media serves image uploads backed by object storage.
package media

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/config"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/logger"
)

// ObjectStore is the subset of object storage the upload routes need.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

const (
	keyPrefix = "images/"
	// filetype only inspects the first 262 bytes
	sniffLen = 262
	// room for multipart boundaries and headers on top of the file itself
	formOverhead = 1 << 20
)

type Handler struct {
	store    ObjectStore
	maxBytes int64
	ttl      time.Duration
	// urlBase is the public path the uploads group is mounted under, e.g. /api
	urlBase string
	newID   func() string
}

func NewHandler(store ObjectStore, cfg config.UploadConfig, urlBase string) *Handler {
	return &Handler{
		store:    store,
		maxBytes: cfg.MaxBytes,
		ttl:      cfg.URLTTL,
		urlBase:  strings.TrimSuffix(urlBase, "/"),
		newID:    uuid.NewString,
	}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.Upload)
	rg.GET("/uploads/*key", h.Redirect)
}

// Upload stores the multipart "file" field if it is an image.
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+formOverhead)
	fh, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' required"})
		return
	}
	if fh.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
		return
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
		return
	}
	head = head[:n]
	if !filetype.IsImage(head) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only image uploads are accepted"})
		return
	}
	kind, _ := filetype.Match(head)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
		return
	}

	key := keyPrefix + h.newID() + "." + kind.Extension
	if err := h.store.Upload(c.Request.Context(), key, f, fh.Size, kind.MIME.Value); err != nil {
		logger.Errorf("upload %s failed: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	logger.Infof("stored upload %s (%d bytes, %s)", key, fh.Size, kind.MIME.Value)
	c.JSON(http.StatusOK, gin.H{"key": key, "image_url": h.urlBase + "/uploads/" + key})
}

// Redirect sends the client to a short-lived presigned URL for the object.
func (h *Handler) Redirect(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if !strings.HasPrefix(key, keyPrefix) || strings.Contains(key, "..") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
		return
	}
	u, err := h.store.PresignedURL(c.Request.Context(), key, h.ttl)
	if err != nil {
		logger.Errorf("presign %s failed: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, u)
}
