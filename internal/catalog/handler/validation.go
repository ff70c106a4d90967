package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var tagNameOnce sync.Once

// registerJSONFieldNames makes validator report json names (name_en) instead
// of Go field names (NameEn).
func registerJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return f.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into dst. On failure it writes a
// 422 response and returns false; storage is never reached.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "detail": validationDetail(err)})
		return false
	}
	return true
}

func validationDetail(err error) []FieldError {
	var (
		ve validator.ValidationErrors
		te *json.UnmarshalTypeError
		se *json.SyntaxError
	)
	switch {
	case errors.As(err, &ve):
		out := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			msg := "field required"
			if fe.Tag() != "required" {
				msg = fmt.Sprintf("failed %q validation", fe.Tag())
			}
			out = append(out, FieldError{Field: fe.Field(), Message: msg})
		}
		return out
	case errors.As(err, &te):
		return []FieldError{{Field: te.Field, Message: fmt.Sprintf("expected %s, got %s", te.Type, te.Value)}}
	case errors.As(err, &se):
		return []FieldError{{Field: "body", Message: "malformed JSON"}}
	case errors.Is(err, io.EOF):
		return []FieldError{{Field: "body", Message: "request body required"}}
	}
	return []FieldError{{Field: "body", Message: err.Error()}}
}
