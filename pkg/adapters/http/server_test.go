package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(t, NewHandler(), "GET", "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestInfo(t *testing.T) {
	w := doRequest(t, NewHandler(), "GET", "/info")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "nepalikit-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, "1.0.0", resp["api_version"])
}

func TestOpenAPIDocument(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err, "embedded spec must parse and validate")
	require.NotNil(t, doc.Info)
	assert.Equal(t, "nepalikit API", doc.Info.Title)

	w := doRequest(t, NewHandler(), "GET", "/openapi.yaml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/yaml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}

func TestSwaggerUI(t *testing.T) {
	w := doRequest(t, NewHandler(), "GET", "/swagger")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

func TestCORS(t *testing.T) {
	handler := NewHandler()

	w := doRequest(t, handler, "OPTIONS", "/api/v1/today")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = doRequest(t, handler, "GET", "/health")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	handler := NewHandler()

	doRequest(t, handler, "GET", "/health")
	doRequest(t, handler, "GET", "/api/v1/provinces")

	w := doRequest(t, handler, "GET", "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "nepalikit_http_requests_total")
	assert.Contains(t, body, `route="/api/v1/provinces"`)
	assert.Contains(t, body, "nepalikit_http_request_duration_seconds")
}

func TestUnknownRoute(t *testing.T) {
	w := doRequest(t, NewHandler(), "GET", "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
