// Package server exposes the dashboard queries as a JSON HTTP API for chart frontends.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Loader builds a fresh dashboard from the inputs, it is called on reload.
type Loader func() (*dashboard.Dashboard, error)

// Config holds the server dependencies.
type Config struct {
	Port   int
	Loader Loader
	Log    zerolog.Logger
}

// Server serves the dashboard API.
type Server struct {
	router *chi.Mux
	server *http.Server
	load   Loader
	log    zerolog.Logger

	// current is swapped as a whole on reload, dashboards are never mutated.
	current atomic.Pointer[dashboard.Dashboard]
}

// New loads the dashboard once and returns a server ready to Start.
func New(cfg Config) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		load:   cfg.Loader,
		log:    logger.Component(cfg.Log, "server"),
	}
	if err := s.reload(); err != nil {
		return nil, err
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// Handler returns the http handler of the API.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens and serves until Shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) reload() error {
	d, err := s.load()
	if err != nil {
		return fmt.Errorf("loading dashboard: %w", err)
	}
	s.current.Store(d)
	return nil
}

func (s *Server) dashboard() *dashboard.Dashboard { return s.current.Load() }

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/totals", s.handleTotals)
		r.Get("/types", s.handleTypes)
		r.Get("/composition", s.handleComposition)
		r.Get("/summary", s.handleSummary)
		r.Get("/accounts", s.handleAccounts)
		r.Get("/accounts/{account}", s.handleAccountBalances)
		r.Post("/reload", s.handleReload)
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}
