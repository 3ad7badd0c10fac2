package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"encly/internal/metrics"
)

type HTTPRecorder interface {
	Enabled() bool
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request. Paths are recorded as route
// templates so that short codes do not explode cardinality.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !recorder.Enabled() {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			statusCode := c.Response().Status
			var errStr string
			if err != nil {
				errStr = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					statusCode = he.Code
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start.UTC(),
				RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
				Method:     c.Request().Method,
				Route:      cmp.Or(c.Path(), "/"),
				StatusCode: statusCode,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				Error:      errStr,
			})

			return err
		}
	}
}
