package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nepalikit/nepalikit/pkg/geo"
)

// pathID extracts the {id} path parameter. The bool result reports success;
// the failure response has already been written when it is false.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

// respondLookup writes v, mapping geo.ErrNotFound to 404.
func (s *Server) respondLookup(w http.ResponseWriter, v any, err error) {
	if err != nil {
		if errors.Is(err, geo.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		s.logger.Error("Lookup failed", "error", err)
		return
	}
	s.respondJSON(w, http.StatusOK, v)
}

// ListProvinces handles the GET /api/v1/provinces request.
func (s *Server) ListProvinces(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, geo.Provinces())
}

// GetProvince handles the GET /api/v1/provinces/{id} request.
func (s *Server) GetProvince(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	p, err := geo.ProvinceByID(id)
	s.respondLookup(w, p, err)
}

// ListProvinceDistricts handles the GET /api/v1/provinces/{id}/districts request.
func (s *Server) ListProvinceDistricts(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	districts, err := geo.DistrictsByProvince(id)
	s.respondLookup(w, districts, err)
}

// ListDistricts handles the GET /api/v1/districts request.
func (s *Server) ListDistricts(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, geo.Districts())
}

// GetDistrict handles the GET /api/v1/districts/{id} request.
func (s *Server) GetDistrict(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	d, err := geo.DistrictByID(id)
	s.respondLookup(w, d, err)
}

// ListDistrictMunicipalities handles the GET /api/v1/districts/{id}/municipalities request.
func (s *Server) ListDistrictMunicipalities(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	municipalities, err := geo.MunicipalitiesByDistrict(id)
	if err == nil && municipalities == nil {
		municipalities = []geo.Municipality{}
	}
	s.respondLookup(w, municipalities, err)
}

// ListMunicipalities handles the GET /api/v1/municipalities request.
func (s *Server) ListMunicipalities(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, geo.Municipalities())
}

// GetMunicipality handles the GET /api/v1/municipalities/{id} request.
func (s *Server) GetMunicipality(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	m, err := geo.MunicipalityByID(id)
	s.respondLookup(w, m, err)
}

// GetMunicipalityWards handles the GET /api/v1/municipalities/{id}/wards request.
func (s *Server) GetMunicipalityWards(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	wards, err := geo.Wards(id)
	if err != nil {
		s.respondLookup(w, nil, err)
		return
	}
	s.respondJSON(w, http.StatusOK, WardsResponse{MunicipalityID: id, Wards: wards})
}

// GetMunicipalityHierarchy handles the GET /api/v1/municipalities/{id}/hierarchy request.
func (s *Server) GetMunicipalityHierarchy(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	h, err := geo.HierarchyOf(id)
	s.respondLookup(w, h, err)
}
