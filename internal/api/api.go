package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloudwatchr/cloudwatchr/internal/alertstore"
	"github.com/cloudwatchr/cloudwatchr/internal/domain"
	"github.com/cloudwatchr/cloudwatchr/internal/metricstore"
	"github.com/cloudwatchr/cloudwatchr/internal/webserver"
)

// Init registers every API route against the web server.
func Init() {
	registerMetricRoutes()
	registerAlertRoutes()
	registerInsightRoutes()
	registerHealthRoutes()
}

// GetStore returns the metric store injected by the web server.
func GetStore(c echo.Context) *metricstore.Store {
	return c.Get(webserver.MetricStoreKey).(*metricstore.Store)
}

// GetAlerts returns the alert store injected by the web server.
func GetAlerts(c echo.Context) *alertstore.Store {
	return c.Get(webserver.AlertStoreKey).(*alertstore.Store)
}

// failValidation renders the fixed validation failure shape with 400.
func failValidation(c echo.Context, errs domain.FieldErrors) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":            "Validation failed",
		"validationErrors": errs,
	})
}

// failBadRequest covers malformed request bodies.
func failBadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}
