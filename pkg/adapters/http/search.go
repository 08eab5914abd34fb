package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/nepalikit/nepalikit/pkg/geo"
	"github.com/nepalikit/nepalikit/pkg/ports"
)

// SearchParams holds the bound query for GET /api/v1/search.
type SearchParams struct {
	Q         string  `json:"q"`
	Type      *string `json:"type,omitempty"`
	Threshold *int    `json:"threshold,omitempty"`
	Limit     *int    `json:"limit,omitempty"`
}

// SearchPlaces handles the GET /api/v1/search request. Responses are cached
// under the full parameter set when a cache is configured.
func (s *Server) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	var params SearchParams
	if err := runtime.BindQueryParameter("form", true, true, "q", r.URL.Query(), &params.Q); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "type", r.URL.Query(), &params.Type); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "threshold", r.URL.Query(), &params.Threshold); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var opts []geo.SearchOption
	typ := ""
	if params.Type != nil {
		typ = *params.Type
		switch kind := geo.Kind(typ); kind {
		case geo.KindProvince, geo.KindDistrict, geo.KindMunicipality:
			opts = append(opts, geo.WithKinds(kind))
		default:
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown type %q", typ))
			return
		}
	}
	threshold := geo.DefaultThreshold
	if params.Threshold != nil {
		threshold = *params.Threshold
		opts = append(opts, geo.WithThreshold(threshold))
	}
	limit := geo.DefaultLimit
	if params.Limit != nil {
		limit = *params.Limit
		opts = append(opts, geo.WithLimit(limit))
	}

	key := fmt.Sprintf("search:%s:%s:%d:%d", params.Q, typ, threshold, limit)
	if body, ok := s.cachedSearch(r, key); ok {
		s.metrics.cacheHits.Inc()
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
		return
	}

	matches, err := geo.Search(params.Q, opts...)
	switch {
	case errors.Is(err, geo.ErrNoMatch):
		matches = []geo.Match{}
	case errors.Is(err, geo.ErrEmptyQuery):
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.respondError(w, http.StatusInternalServerError, err.Error())
		s.logger.Error("Search failed", "error", err)
		return
	}

	body, err := json.Marshal(SearchResponse{Query: params.Q, Matches: matches})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "encode failed")
		s.logger.Error("Search encode failed", "error", err)
		return
	}
	s.storeSearch(r, key, body)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (s *Server) cachedSearch(r *http.Request, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	body, err := s.cache.Get(r.Context(), key)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn("Search cache get failed", "error", err, "key", key)
		}
		s.metrics.cacheMisses.Inc()
		return nil, false
	}
	return body, true
}

func (s *Server) storeSearch(r *http.Request, key string, body []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(r.Context(), key, body, s.cacheTTL); err != nil {
		s.logger.Warn("Search cache set failed", "error", err, "key", key)
	}
}
