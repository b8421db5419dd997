package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/doc-vault/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// protectedRoutes lists every route that must sit behind the auth middleware.
var protectedRoutes = []routeCase{
	{http.MethodPost, "/api/auth/logout"},
	{http.MethodGet, "/api/auth/session"},
	{http.MethodGet, "/api/categories"},
	{http.MethodPost, "/api/categories"},
	{http.MethodDelete, "/api/categories/c-1"},
	{http.MethodGet, "/api/categories/c-1/documents"},
	{http.MethodPost, "/api/categories/c-1/documents"},
	{http.MethodGet, "/api/documents"},
	{http.MethodPatch, "/api/documents/d-1"},
	{http.MethodDelete, "/api/documents/d-1"},
	{http.MethodGet, "/api/documents/d-1/url"},
	{http.MethodGet, "/api/folders"},
	{http.MethodPost, "/api/folders"},
	{http.MethodGet, "/api/folders/f-1/registres"},
	{http.MethodPost, "/api/folders/f-1/registres"},
	{http.MethodGet, "/api/registres/r-1"},
	{http.MethodPut, "/api/registres/r-1"},
	{http.MethodGet, "/api/registres/r-1/signature/url"},
	{http.MethodPost, "/api/signatures"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, tc.method, tc.path, nil, nil)

			// 401 доказывает, что маршрут существует и защищён
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.MsgNoTokenProvided, decodeMessage(t, rec))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/api/nonexistent", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNotFound, decodeMessage(t, rec))
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodDelete, "/api/version", nil, nil)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestInit_WrongMethodListsAllAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/registres/r-1", nil, nil)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT", rec.Header().Get("Allow"))
}

func TestInit_TraceIDEchoed(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/api/ping", nil, map[string]string{traceIDHeader: "trace-42"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
