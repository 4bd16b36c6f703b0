// Package server exposes the generation pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/prosport1/ProSport/internal/generator"
	"github.com/prosport1/ProSport/internal/repository"
	"github.com/prosport1/ProSport/internal/validation"
)

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// Pinger reports backing-store liveness. The health endpoint checks it when
// one is configured.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Addr         string
	Orchestrator *generator.Orchestrator
	Validator    *validation.Validator
	Artifacts    *repository.ArtifactRepository // optional; nil disables history
	Database     Pinger                         // optional; nil skips the liveness check
	StaticDir    string                         // optional; serves /files/* for local storage
	Logger       *zap.Logger
}

func New(opts Options) *Server {
	h := &handlers{
		orchestrator: opts.Orchestrator,
		validator:    opts.Validator,
		artifacts:    opts.Artifacts,
		database:     opts.Database,
		logger:       opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.health)
	r.Route("/api/landing", func(r chi.Router) {
		r.Post("/generate", h.generate)
		r.Get("/recent", h.recent)
	})

	if opts.StaticDir != "" {
		fs := http.StripPrefix("/files/", http.FileServer(http.Dir(opts.StaticDir)))
		r.Get("/files/*", fs.ServeHTTP)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: opts.Logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
