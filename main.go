package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webinar-server/internal/config"
)

// Request body size limits
const (
	maxBodySize = 4 * 1024 // forms carry no fields beyond the path
)

// limitBody wraps an HTTP handler to limit request body size
func limitBody(next http.HandlerFunc, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next(w, r)
	}
}

// securityHeaders wraps an HTTP handler to add security headers
func securityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// - img-src 'self' data:: QR codes are served from this origin
		// - style-src 'self': all styling comes from the stylesheet
		csp := "default-src 'self'; " +
			"img-src 'self' data:; " +
			"style-src 'self'; " +
			"script-src 'self'; " +
			"form-action 'self'"
		w.Header().Set("Content-Security-Policy", csp)
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next(w, r)
	}
}

// newRouter wires every route; main and the tests share it
func newRouter() http.Handler {
	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir("./static"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/webinars", http.StatusFound)
	})
	mux.HandleFunc("GET /webinars", securityHeaders(webinarsHandler))
	mux.HandleFunc("POST /webinars/{id}/details", securityHeaders(limitBody(webinarDetailsHandler, maxBodySize)))
	mux.HandleFunc("GET /webinars/{id}/qr.png", webinarQRHandler)
	mux.HandleFunc("POST /admin/reload", requireAdmin(limitBody(adminReloadHandler, maxBodySize)))
	mux.HandleFunc("GET /health", healthHandler)
	mux.HandleFunc("GET /metrics", metricsHandler)

	return RequestLoggingMiddleware(mux)
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		os.Exit(runHashPassword(os.Stdin, os.Stdout, os.Stderr))
	}

	InitLogger()
	config.InitI18n()
	loadAdminCredentials()

	catalog, err := loadCatalogFromEnv()
	if err != nil {
		slog.Error("failed to load webinar catalog", "error", err)
		os.Exit(1)
	}
	activeCatalog.Store(catalog)

	InitCaches()
	defer cacheBackend.Close()

	// Initialize templates at startup for better performance
	initTemplates()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "url", "http://localhost:"+port+"/webinars")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
