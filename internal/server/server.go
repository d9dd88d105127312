// Package server is the dev server: it serves the generated site,
// drives header navigation for preview sessions over a websocket, and
// broadcasts reloads when content changes.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config holds dev server configuration.
type Config struct {
	Port    int
	SiteDir string // directory containing the generated site
}

// Server serves the generated site with live preview endpoints.
type Server struct {
	cfg        Config
	router     chi.Router
	reload     *reloadHub
	httpServer *http.Server
}

// New creates a dev server for the given site directory.
func New(cfg Config) *Server {
	s := &Server{
		cfg:    cfg,
		reload: newReloadHub(),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/ws/nav", s.handleNavSocket)
	r.Get("/ws/reload", s.handleReloadSocket)

	// Static site files last so the websocket routes win.
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))

	return r
}

// Router exposes the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// NotifyReload tells connected pages to reload. The watcher calls this
// after a successful rebuild.
func (s *Server) NotifyReload() {
	s.reload.broadcast()
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("sitegen dev server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
