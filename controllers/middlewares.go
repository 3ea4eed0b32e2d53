package controllers

import (
	"errors"
	"net/http"
	"time"

	"stylistapi/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func newRequestID() string {
	return uuid.NewString()
}

// ContextLoggerMiddleware stores a logger tagged with the request id under
// "__log". RequestID must run first.
func ContextLoggerMiddleware(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			entry := log.WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("__log", logrus.FieldLogger(entry))
			return next(c)
		}
	}
}

func RequestLogMiddleware(log *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			switch {
			case v.Error != nil:
				entry.WithError(v.Error).Error("request failed")
			case v.Status >= http.StatusInternalServerError:
				entry.Error("request")
			default:
				entry.Info("request")
			}
			return nil
		},
	})
}

// MetricsMiddleware records request counts and latency by route template.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := metrics.RequestStarted()
		defer done()
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}
		metrics.RecordHTTPRequest(c.Request().Method, c.Path(), status, time.Since(start))
		return err
	}
}
