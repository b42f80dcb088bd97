// internal/server/server.go

package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fashiontrends/internal/config"
	"fashiontrends/internal/domain/trend"
	"fashiontrends/internal/server/handlers"
	"fashiontrends/internal/service/feed"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server. A nil hub disables the live feed route.
func NewServer(
	cfg config.Config,
	catalog trend.Catalog,
	engine trend.Aggregator,
	hub *feed.Hub,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger)
	router.Use(instrument)
	router.Use(recoverer)

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CorsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	router.NotFound(handlers.NotFound)
	router.MethodNotAllowed(handlers.MethodNotAllowed)

	trendHandler := handlers.NewTrendHandler(catalog, engine)

	router.Get("/", trendHandler.Index)

	// Routes
	router.Route("/api", func(r chi.Router) {
		if cfg.Server.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
		}

		r.Get("/health", trendHandler.Health)

		r.Route("/trends", func(r chi.Router) {
			r.Get("/", trendHandler.GetTrends)
			r.Get("/{region}", trendHandler.GetRegionTrends)
		})

		r.Get("/trending-colors", trendHandler.GetTrendingColors)
		r.Get("/trending-items", trendHandler.GetTrendingItems)
		r.Get("/analytics", trendHandler.GetAnalytics)
		r.Get("/seasonal-trends", trendHandler.GetSeasonalTrends)
		r.Get("/influencer-impact", trendHandler.GetInfluencerImpact)
		r.Get("/regional-comparison", trendHandler.GetRegionalComparison)
	})

	// WebSocket endpoint for the live trending-color feed
	if hub != nil {
		router.Get("/ws/trending-colors", handlers.FeedWebSocketHandler(hub))
	}

	if cfg.Metrics.Enabled {
		router.Method(http.MethodGet, cfg.Metrics.Path, promhttp.Handler())
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
