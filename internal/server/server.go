package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	v1 "github.com/gosuda/snet/internal/api/v1"
	"github.com/gosuda/snet/internal/config"
	"github.com/gosuda/snet/internal/server/middleware"
)

// Service is the establishment and store service layer.
// *apiclient.Client satisfies this interface.
type Service interface {
	v1.EstablishmentService
	v1.StoreService
}

// SessionService issues and resolves console sessions.
// *session.Manager satisfies this interface.
type SessionService interface {
	v1.SessionManager
	middleware.SessionResolver
}

// Server is the HTTP server that wires all console routes and middleware.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	cfg        *config.Config
}

// New creates a Server with all routes wired. ctx bounds background work such
// as rate limiter cleanup.
// webAssets may be nil; when provided, the console UI is served on all
// unmatched routes and protected pages are gated on a logged-in session.
func New(ctx context.Context, cfg *config.Config, svc Service, sessions SessionService, webAssets fs.FS) *Server {
	router := chi.NewRouter()

	// Global middleware stack.
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	router.Use(middleware.LoadSession(sessions))

	s := &Server{
		router: router,
		cfg:    cfg,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	// Mount API routes on /api/v1 with two sub-groups:
	// 1. Session routes, reachable without a session.
	// 2. Establishment and store routes behind the login guard.
	router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(ctx, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

			sessionConfig := huma.DefaultConfig("snet Session API", "1.0.0")
			sessionConfig.Servers = []*huma.Server{
				{URL: "/api/v1"},
			}
			// Docs are served by the main API below.
			sessionConfig.OpenAPIPath = ""
			sessionConfig.DocsPath = ""
			sessionConfig.SchemasPath = ""
			sessionAPI := humachi.New(r, sessionConfig)
			registerSessionRoutes(sessionAPI, sessions, cfg.Session.SecureCookie)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLoginAPI())
			r.Use(middleware.RateLimit(ctx, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

			apiConfig := huma.DefaultConfig("snet Console API", "1.0.0")
			apiConfig.Servers = []*huma.Server{
				{URL: "/api/v1"},
			}
			api := humachi.New(r, apiConfig)
			registerAPIRoutes(api, svc)
		})
	})

	// Health check (unauthenticated).
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Serve the embedded console UI. Page navigations under the protected
	// prefixes pass the login guard; everything else (login page, assets)
	// is served as is. NotFound must stay last so API routes take priority.
	if webAssets != nil {
		ui := spaFileServer(webAssets)
		router.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin())
			registerPageRoutes(r, ui)
		})
		router.NotFound(ui.ServeHTTP)
		log.Info().Msg("embedded console UI enabled")
	}

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests.
func (s *Server) Start(_ context.Context) error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Start: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}
