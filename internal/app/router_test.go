package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/repository"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/service"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/config"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/metrics"
)

type stubDB struct{ err error }

func (s stubDB) Ping(context.Context, *readpref.ReadPref) error { return s.err }

type stubMedia struct{}

func (stubMedia) Upload(context.Context, string, io.Reader, int64, string) error { return nil }

func (stubMedia) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://objects.example/" + key, nil
}

func testDeps(origins ...string) Deps {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	return Deps{
		Config: &config.Config{
			Server: config.ServerConfig{APIPrefix: "/api"},
			CORS:   config.CORSConfig{AllowedOrigins: origins},
			Upload: config.UploadConfig{MaxBytes: 1 << 20, URLTTL: time.Minute},
		},
		Service:  service.NewService(repository.NewMemoryStore()),
		DB:       stubDB{},
		Registry: reg,
	}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndReady(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testDeps())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ready"`)

	d := testDeps()
	d.DB = stubDB{err: errors.New("no reachable servers")}
	w = serve(NewRouter(d), httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), `"mongo":false`)
}

func TestAPIRootAndCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "https://golnavaz.example")
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Golnavaz API"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://golnavaz.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w = serve(r, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestExplicitOriginsGetCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testDeps("https://golnavaz.af"))

	req := httptest.NewRequest(http.MethodGet, "/api/faqs", nil)
	req.Header.Set("Origin", "https://golnavaz.af")
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://golnavaz.af", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/faqs", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testDeps())
	serve(r, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "golnavaz_http_requests_total")
	assert.Contains(t, body, `route="/api/products"`)
}

func TestUploadRoutesOnlyWithObjectStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := serve(NewRouter(testDeps()), httptest.NewRequest(http.MethodGet, "/api/uploads/images/a.png", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	d := testDeps()
	d.Media = stubMedia{}
	w = serve(NewRouter(d), httptest.NewRequest(http.MethodGet, "/api/uploads/images/a.png", nil))
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.True(t, strings.HasSuffix(w.Header().Get("Location"), "/images/a.png"))
}

func TestSwaggerMounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := serve(NewRouter(testDeps()), httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"/api/products"`)
}
