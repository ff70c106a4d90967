package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/golnavaz/golnavaz/backend/go-services/handlers"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/handler"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/service"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/config"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/database"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/media"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/logger"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/middleware"
)

const readyTimeout = 2 * time.Second

// Deps is everything the router needs. Media is optional; without it the
// upload routes are not mounted.
type Deps struct {
	Config   *config.Config
	Service  *service.Service
	DB       database.Pinger
	Media    media.ObjectStore
	Registry *prometheus.Registry
}

var startTime = time.Now()

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger())
	r.Use(middleware.CORSMiddleware(d.Config.CORS.AllowedOrigins))
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// ready only when MongoDB answers a ping
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"mongo": true}
		if err := database.Ready(c.Request.Context(), d.DB, readyTimeout); err != nil {
			logger.Warnf("readiness: %v", err)
			deps["mongo"] = false
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": fmt.Sprint(time.Since(startTime))})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": fmt.Sprint(time.Since(startTime))})
	})

	prefix := d.Config.Server.APIPrefix
	api := r.Group(prefix)
	handler.NewHandler(d.Service).Register(api)
	if d.Media != nil {
		media.NewHandler(d.Media, d.Config.Upload, prefix).Register(api)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	handlers.RegisterSwagger(r, prefix)
	return r
}
