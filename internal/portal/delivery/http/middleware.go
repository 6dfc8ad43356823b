package http

import (
	"net/http"

	"econgov-portal/internal/portal/dto"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// AdminTokenMiddleware rejects requests whose X-Admin-Token header does not
// match the configured token. An empty configured token disables the admin
// surface entirely rather than leaving it open.
func AdminTokenMiddleware(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" || c.Request().Header.Get("X-Admin-Token") != token {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
			}
			return next(c)
		}
	}
}

// RateLimitMiddleware applies a shared token-bucket limit to the group it
// wraps. The admin surface runs heavyweight synchronous actions, so the
// bucket is global rather than per-client.
func RateLimitMiddleware(requestsPerMinute float64, burst int) echo.MiddlewareFunc {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	if burst <= 0 {
		burst = 5
	}
	limiter := rate.NewLimiter(rate.Limit(requestsPerMinute/60.0), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
