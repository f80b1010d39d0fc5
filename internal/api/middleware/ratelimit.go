package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Cybrite/primetrade/internal/api/metrics"
)

// Limiter abstracts the fixed-window counter store (Redis).
type Limiter interface {
	Allow(ctx context.Context, clientIP string) (bool, error)
}

type rateLimitResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RateLimit bounds request volume per client address. The limiter only bounds
// abuse, not correctness: when the counter store errors the request is
// allowed through and the failure is logged.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RequestsRateLimitedTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, rateLimitResponse{
					Success: false,
					Error:   "Too many requests from this IP, please try again later.",
				})
			}
			return next(c)
		}
	}
}
