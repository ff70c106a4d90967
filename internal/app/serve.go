package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/repository"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/service"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/config"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/database"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/media"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/logger"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/metrics"
)

const (
	logFileMaxMB    = 100
	shutdownTimeout = 10 * time.Second
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Serve(ctx)
}

func setupLogging(cfg *config.Config) {
	logger.Init(cfg.Log.Level)
	if cfg.Log.File != "" {
		logger.EnableFile(cfg.Log.File, logFileMaxMB)
	}
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())
}

// Serve connects to MongoDB, starts the API server and blocks until ctx is
// cancelled, then shuts the server down and disconnects.
func Serve(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logger.Warnf("mongo disconnect: %v", err)
		}
	}()
	logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)

	store, err := repository.NewMongoStore(ctx, client.Database(cfg.MongoDB.Database))
	if err != nil {
		return err
	}

	deps := Deps{
		Config:   cfg,
		Service:  service.NewService(store),
		DB:       client,
		Registry: newRegistry(),
	}
	if cfg.MinIO.Enabled() {
		ms, err := media.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("object storage unavailable, uploads disabled: %v", err)
		} else {
			deps.Media = ms
			logger.Infof("image uploads enabled (bucket %s)", cfg.MinIO.Bucket)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("starting golnavaz API on %s (prefix %s)", srv.Addr, cfg.Server.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infof("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)
	return reg
}
