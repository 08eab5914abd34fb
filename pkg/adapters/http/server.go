package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nepalikit/nepalikit"
	"github.com/nepalikit/nepalikit/pkg/ports"
)

// Server holds the handler state behind the REST API.
type Server struct {
	cache    ports.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	metrics  *metrics
}

// Option configures the Server assembled by NewHandler.
type Option func(*Server)

// WithCache caches search responses in c for ttl. A non-positive ttl stores
// entries without expiry.
func WithCache(c ports.Cache, ttl time.Duration) Option {
	return func(s *Server) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithLogger sets the request logger. The default logger is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHandler assembles the REST API router.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		logger:  slog.Default(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.metrics.instrument)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)
	r.Get("/swagger", s.GetSwaggerUI)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/today", s.GetToday)
		r.Get("/convert", s.ConvertDate)
		r.Get("/calendar/{year}/{month}", s.GetCalendarMonth)
		r.Get("/provinces", s.ListProvinces)
		r.Get("/provinces/{id}", s.GetProvince)
		r.Get("/provinces/{id}/districts", s.ListProvinceDistricts)
		r.Get("/districts", s.ListDistricts)
		r.Get("/districts/{id}", s.GetDistrict)
		r.Get("/districts/{id}/municipalities", s.ListDistrictMunicipalities)
		r.Get("/municipalities", s.ListMunicipalities)
		r.Get("/municipalities/{id}", s.GetMunicipality)
		r.Get("/municipalities/{id}/wards", s.GetMunicipalityWards)
		r.Get("/municipalities/{id}/hierarchy", s.GetMunicipalityHierarchy)
		r.Get("/search", s.SearchPlaces)
		r.Get("/numerals", s.TransliterateNumerals)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"app":         "nepalikit-http",
		"version":     strings.TrimSpace(nepalikit.Version),
		"api_version": apiVersion,
	})
}

// GetOpenAPISpec handles the GET /openapi.yaml request.
func (s *Server) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	spec, err := rawSpec()
	if err != nil {
		http.Error(w, "Failed to load spec", http.StatusInternalServerError)
		s.logger.Error("Failed to load OpenAPI spec", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/yaml")
	w.Write(spec)
}

// GetSwaggerUI handles the GET /swagger request.
func (s *Server) GetSwaggerUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(swaggerHTML))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, ErrorResponse{Error: msg})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>nepalikit API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
