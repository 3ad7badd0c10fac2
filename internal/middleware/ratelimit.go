package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"encly/internal/config"
	"encly/internal/logger"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type rateLimitResponse struct {
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

// RateLimit limits requests per client IP. A non-positive RPS disables it.
func RateLimit(cfg *config.RateLimitConfig, base *slog.Logger) echo.MiddlewareFunc {
	if cfg.RPS <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	retryAfter := max(1, int(1/cfg.RPS))
	denied := rateLimitResponse{Message: "Too many requests.", RetryAfter: retryAfter}
	secret := []byte(cfg.BypassSecret)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if len(secret) == 0 {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.FromContext(c.Request().Context(), base).Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("route", c.Path()))
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
			return c.JSON(http.StatusTooManyRequests, denied)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.FromContext(c.Request().Context(), base).Error("rate limiter error",
				slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error."})
		},
	})
}
