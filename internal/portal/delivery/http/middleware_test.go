package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRequest(t *testing.T, mw echo.MiddlewareFunc, token string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/maintenance/seed", nil)
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Code
}

func TestAdminTokenMiddleware(t *testing.T) {
	mw := AdminTokenMiddleware("secret")

	assert.Equal(t, http.StatusOK, adminRequest(t, mw, "secret"))
	assert.Equal(t, http.StatusUnauthorized, adminRequest(t, mw, "wrong"))
	assert.Equal(t, http.StatusUnauthorized, adminRequest(t, mw, ""))
}

func TestAdminTokenMiddlewareEmptyTokenClosesSurface(t *testing.T) {
	mw := AdminTokenMiddleware("")

	assert.Equal(t, http.StatusUnauthorized, adminRequest(t, mw, ""))
	assert.Equal(t, http.StatusUnauthorized, adminRequest(t, mw, "anything"))
}

func TestRateLimitMiddleware(t *testing.T) {
	// One-token bucket with a negligible refill rate: the second request
	// inside the window must be rejected.
	mw := RateLimitMiddleware(0.0001, 1)

	assert.Equal(t, http.StatusOK, adminRequest(t, mw, ""))
	assert.Equal(t, http.StatusTooManyRequests, adminRequest(t, mw, ""))
}
