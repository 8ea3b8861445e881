package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applySecurityHeaders(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestSecurityHeaders_FullSet(t *testing.T) {
	rec := applySecurityHeaders(t)
	assert.Equal(t, http.StatusOK, rec.Code)

	for name, want := range securityHeaders {
		assert.Equal(t, want, rec.Header().Get(name), "header %s", name)
	}
}

func TestSecurityHeaders_ResponsesNotCacheable(t *testing.T) {
	rec := applySecurityHeaders(t)

	assert.Equal(t, "no-store, no-cache, must-revalidate, private", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
	assert.Equal(t, "0", rec.Header().Get("Expires"))
}

func TestSecurityHeaders_NextHandlerRuns(t *testing.T) {
	e := echo.New()

	called := false
	handler := SecurityHeaders()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
