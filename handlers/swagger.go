package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves the OpenAPI description of the catalog API.
// - GET /swagger/index.html  -> swagger-ui page loading doc.json
// - GET /swagger/doc.json    -> OpenAPI JSON, paths rooted at apiPrefix
func RegisterSwagger(r *gin.Engine, apiPrefix string) {
	doc := strings.ReplaceAll(swaggerJSON, "{{prefix}}", strings.TrimSuffix(apiPrefix, "/"))

	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})
	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Golnavaz API — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Golnavaz API", "version": "v1.0.0", "description": "Multilingual (en/fa/ps) catalog: products, blogs, gallery, FAQs, contact and inquiry forms." },
  "components": {
    "schemas": {
      "Product": { "type": "object", "required": ["id","category","name_en","name_fa","name_ps","image_url","featured"], "properties": {
        "id": {"type":"string"}, "category": {"type":"string"},
        "name_en": {"type":"string"}, "name_fa": {"type":"string"}, "name_ps": {"type":"string"},
        "description_en": {"type":"string","nullable":true}, "description_fa": {"type":"string","nullable":true}, "description_ps": {"type":"string","nullable":true},
        "image_url": {"type":"string"}, "featured": {"type":"boolean"} } },
      "Blog": { "type": "object", "properties": {
        "id": {"type":"string"},
        "title_en": {"type":"string"}, "title_fa": {"type":"string"}, "title_ps": {"type":"string"},
        "excerpt_en": {"type":"string"}, "excerpt_fa": {"type":"string"}, "excerpt_ps": {"type":"string"},
        "content_en": {"type":"string"}, "content_fa": {"type":"string"}, "content_ps": {"type":"string"},
        "image_url": {"type":"string"}, "created_at": {"type":"string"} } },
      "GalleryImage": { "type": "object", "properties": {
        "id": {"type":"string"}, "image_url": {"type":"string"}, "category": {"type":"string"},
        "alt_en": {"type":"string"}, "alt_fa": {"type":"string"}, "alt_ps": {"type":"string"} } },
      "FAQ": { "type": "object", "properties": {
        "id": {"type":"string"},
        "question_en": {"type":"string"}, "question_fa": {"type":"string"}, "question_ps": {"type":"string"},
        "answer_en": {"type":"string"}, "answer_fa": {"type":"string"}, "answer_ps": {"type":"string"} } },
      "ContactSubmission": { "type": "object", "required": ["name","email","message"], "properties": {
        "id": {"type":"string"}, "name": {"type":"string"}, "email": {"type":"string"},
        "phone": {"type":"string","nullable":true}, "message": {"type":"string"}, "created_at": {"type":"string"} } },
      "InquirySubmission": { "type": "object", "required": ["name","email","product_category","message"], "properties": {
        "id": {"type":"string"}, "name": {"type":"string"}, "email": {"type":"string"},
        "phone": {"type":"string","nullable":true}, "product_category": {"type":"string"},
        "quantity": {"type":"string","nullable":true}, "message": {"type":"string"}, "created_at": {"type":"string"} } },
      "ValidationError": { "type": "object", "properties": {
        "error": {"type":"string"},
        "detail": {"type":"array","items":{"type":"object","properties":{"field":{"type":"string"},"message":{"type":"string"}}}} } }
    }
  },
  "paths": {
    "{{prefix}}/": { "get": { "summary": "Liveness message", "responses": { "200": { "description": "{\"message\":\"Golnavaz API\"}" } } } },
    "{{prefix}}/products": {
      "get": { "summary": "List products", "parameters": [{"name":"category","in":"query","schema":{"type":"string"}}],
        "responses": { "200": { "description": "products", "content": {"application/json": {"schema": {"type":"array","items":{"$ref":"#/components/schemas/Product"}}}} } } },
      "post": { "summary": "Create product", "requestBody": { "content": {"application/json": {"schema": {"$ref":"#/components/schemas/Product"}}} },
        "responses": { "200": { "description": "created product" }, "422": { "description": "validation failed", "content": {"application/json": {"schema": {"$ref":"#/components/schemas/ValidationError"}}} } } }
    },
    "{{prefix}}/products/{id}": {
      "get": { "summary": "Get product", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}],
        "responses": { "200": { "description": "product" }, "404": { "description": "Product not found" } } }
    },
    "{{prefix}}/blogs": {
      "get": { "summary": "List blogs, newest first", "responses": { "200": { "description": "blogs", "content": {"application/json": {"schema": {"type":"array","items":{"$ref":"#/components/schemas/Blog"}}}} } } },
      "post": { "summary": "Create blog", "requestBody": { "content": {"application/json": {"schema": {"$ref":"#/components/schemas/Blog"}}} },
        "responses": { "200": { "description": "created blog" }, "422": { "description": "validation failed" } } }
    },
    "{{prefix}}/blogs/{id}": {
      "get": { "summary": "Get blog", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}],
        "responses": { "200": { "description": "blog" }, "404": { "description": "Blog not found" } } }
    },
    "{{prefix}}/gallery": {
      "get": { "summary": "List gallery images", "parameters": [{"name":"category","in":"query","description":"'all' disables the filter","schema":{"type":"string"}}],
        "responses": { "200": { "description": "images", "content": {"application/json": {"schema": {"type":"array","items":{"$ref":"#/components/schemas/GalleryImage"}}}} } } },
      "post": { "summary": "Create gallery image", "requestBody": { "content": {"application/json": {"schema": {"$ref":"#/components/schemas/GalleryImage"}}} },
        "responses": { "200": { "description": "created image" }, "422": { "description": "validation failed" } } }
    },
    "{{prefix}}/faqs": {
      "get": { "summary": "List FAQs", "responses": { "200": { "description": "faqs", "content": {"application/json": {"schema": {"type":"array","items":{"$ref":"#/components/schemas/FAQ"}}}} } } }
    },
    "{{prefix}}/contact": {
      "post": { "summary": "Submit contact form", "requestBody": { "content": {"application/json": {"schema": {"$ref":"#/components/schemas/ContactSubmission"}}} },
        "responses": { "200": { "description": "stored submission" }, "422": { "description": "validation failed" } } }
    },
    "{{prefix}}/inquiry": {
      "post": { "summary": "Submit wholesale inquiry", "requestBody": { "content": {"application/json": {"schema": {"$ref":"#/components/schemas/InquirySubmission"}}} },
        "responses": { "200": { "description": "stored submission" }, "422": { "description": "validation failed" } } }
    },
    "{{prefix}}/uploads": {
      "post": { "summary": "Upload an image (only when object storage is configured)",
        "requestBody": { "content": {"multipart/form-data": {"schema": {"type":"object","properties":{"file":{"type":"string","format":"binary"}}}}} },
        "responses": { "200": { "description": "{key, image_url}" }, "413": { "description": "file too large" }, "415": { "description": "not an image" } } }
    },
    "{{prefix}}/uploads/{key}": {
      "get": { "summary": "Redirect to a presigned object URL", "parameters": [{"name":"key","in":"path","required":true,"schema":{"type":"string"}}],
        "responses": { "307": { "description": "presigned URL in Location" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "exposition format" } } } }
  }
}`
