package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/divvy-app/divvy/internal/api"
	"github.com/divvy-app/divvy/internal/config"
	"github.com/divvy-app/divvy/internal/middleware"
	"github.com/divvy-app/divvy/internal/service"
	"github.com/divvy-app/divvy/internal/storage/sqlite"
	"github.com/divvy-app/divvy/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.SQLiteDBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.SQLiteDBPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracker, err := service.NewTracker(ctx, store)
	if err != nil {
		slog.Error("Failed to load tracker", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	h := api.NewHandler(tracker)
	r.Mount("/api", h.APIRoutes())
	r.Get("/healthz", h.Health)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	if cfg.StaticPath != "" {
		mountStatic(r, cfg.StaticPath)
	}

	// Wrap with h2c so clients can use HTTP/2 without TLS.
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: h2c.NewHandler(r, &http2.Server{}),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "address", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// mountStatic serves the browser frontend, falling back to index.html for
// unknown non-API paths.
func mountStatic(r chi.Router, staticPath string) {
	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		return
	}
	slog.Info("Serving static files", "path", staticDir)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		filePath := filepath.Join(staticDir, filepath.Clean(req.URL.Path))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, req, filePath)
	})
}
