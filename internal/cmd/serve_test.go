package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcstats/mcstats/internal/report"
)

func TestServeEndpoints(t *testing.T) {
	r := report.New("Minecraft Statistics")
	report.AddCounts(r, "Logins", "Number of times each player logged in.",
		map[string]int{"herobrine": 3})

	e, err := newServer(r)
	require.NoError(t, err)

	// HTML report at the root.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Logins")
	assert.Contains(t, rec.Body.String(), "herobrine")

	// Machine-readable export round-trips back to the same report.
	req = httptest.NewRequest(http.MethodGet, "/api/report.msgpack", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/msgpack", rec.Header().Get(echo.HeaderContentType))
	got, err := report.ReadMsgpack(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Logins", got.Sections[0].Title)

	// Health carries the report identity.
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), r.ID)
}

func TestServeUnknownPath(t *testing.T) {
	e, err := newServer(report.New("Minecraft Statistics"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, strings.Contains(rec.Body.String(), "<table>"))
}
