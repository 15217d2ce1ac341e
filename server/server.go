// Package server exposes the quiz, the allocation engine, the catalog and the
// advisor as a JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/etnz/fundora"
	"github.com/etnz/fundora/advice"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Config holds the server dependencies. Nil tables default to the built-in
// ones.
type Config struct {
	Log     zerolog.Logger
	Addr    string
	Engine  *fundora.Engine
	Quiz    *fundora.Quiz
	Legacy  *fundora.WeightedQuiz
	Catalog *fundora.Catalog
	Advisor advice.Advisor
}

// Server is the HTTP server.
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	engine  *fundora.Engine
	quiz    *fundora.Quiz
	legacy  *fundora.WeightedQuiz
	catalog *fundora.Catalog
	advisor advice.Advisor
}

// New creates a new HTTP server.
func New(cfg Config) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		engine:  cfg.Engine,
		quiz:    cfg.Quiz,
		legacy:  cfg.Legacy,
		catalog: cfg.Catalog,
		advisor: cfg.Advisor,
	}
	if s.engine == nil {
		s.engine = fundora.DefaultEngine()
	}
	if s.quiz == nil {
		s.quiz = fundora.DefaultQuiz()
	}
	if s.legacy == nil {
		s.legacy = fundora.DefaultWeightedQuiz()
	}
	if s.catalog == nil {
		s.catalog = fundora.DefaultCatalog()
	}
	if s.advisor == nil {
		s.advisor = advice.Fallback{}
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))
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
		r.Get("/questions", s.handleQuestions)
		r.Get("/questions/legacy", s.handleLegacyQuestions)
		r.Post("/persona", s.handlePersona)
		r.Post("/allocation", s.handleAllocation)
		r.Get("/products", s.handleProducts)
		r.Post("/advice", s.handleAdvice)
	})
}

// ServeHTTP lets the server be used as a handler, in tests mostly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
