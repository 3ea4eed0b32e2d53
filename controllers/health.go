package controllers

import (
	"context"
	"net/http"
	"time"

	"stylistapi/metrics"
	"stylistapi/storage"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Error   string `json:"error,omitempty"`
}

type HealthController struct {
	Store storage.Storage
}

func (controller *HealthController) HealthRoutes(e *echo.Echo) {
	e.GET("/healthz", controller.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

func (controller *HealthController) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := controller.Store.Ping(ctx); err != nil {
		requestLogger(c).WithError(err).Warn("storage ping failed")
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "unavailable",
			Storage: controller.Store.Backend(),
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Storage: controller.Store.Backend()})
}
