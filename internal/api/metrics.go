package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cloudwatchr/cloudwatchr/internal/domain"
	"github.com/cloudwatchr/cloudwatchr/internal/webserver"
)

// registerMetricRoutes registers metric ingestion endpoints
func registerMetricRoutes() {
	webserver.ApiPOST("/metrics", IngestMetric)
	webserver.ApiPOST("/metrics/batch", IngestMetricsBatch)
	webserver.ApiGET("/metrics", ListMetrics)
	webserver.ApiGET("/metrics/service/:serviceName", ListMetricsByService)
	webserver.ApiGET("/metrics/stats", MetricStats)
	webserver.ApiDELETE("/metrics", ClearMetrics)
}

// IngestMetric validates and stores a single metric event
func IngestMetric(c echo.Context) error {
	var req domain.MetricRequest
	if err := c.Bind(&req); err != nil {
		return failBadRequest(c, "Invalid request body")
	}

	zap.L().Info("metric submission received",
		zap.String("service", req.ServiceName),
		zap.String("endpoint", req.Endpoint))

	metric, errs := GetStore(c).Submit(&req)
	if errs != nil {
		zap.L().Warn("metric rejected", zap.Error(errs))
		return failValidation(c, errs)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Metric ingested successfully",
		"metric":  metric,
	})
}

// IngestMetricsBatch stores a batch of metric events with all-or-nothing
// semantics: one invalid element rejects the whole batch.
func IngestMetricsBatch(c echo.Context) error {
	var reqs []*domain.MetricRequest
	if err := c.Bind(&reqs); err != nil {
		return failBadRequest(c, "Invalid request body")
	}

	zap.L().Info("batch metric submission received", zap.Int("count", len(reqs)))

	metrics, errs := GetStore(c).SubmitBatch(reqs)
	if errs != nil {
		zap.L().Warn("metric batch rejected", zap.Error(errs))
		return failValidation(c, errs)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Batch ingestion successful",
		"count":   len(metrics),
		"metrics": metrics,
	})
}

// ListMetrics returns every stored metric in insertion order
func ListMetrics(c echo.Context) error {
	metrics := GetStore(c).ListAll()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":   len(metrics),
		"metrics": metrics,
	})
}

// ListMetricsByService returns metrics for one service, exact match
func ListMetricsByService(c echo.Context) error {
	serviceName := c.Param("serviceName")
	metrics := GetStore(c).ListByService(serviceName)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"serviceName": serviceName,
		"count":       len(metrics),
		"metrics":     metrics,
	})
}

// MetricStats returns the ingestion counters
func MetricStats(c echo.Context) error {
	stats := GetStore(c).Stats()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"totalIngested":   stats.TotalIngested,
		"currentlyStored": stats.CurrentlyStored,
		"status":          "operational",
	})
}

// ClearMetrics empties the store. The identifier counter and the
// total-ingested counter are left untouched.
func ClearMetrics(c echo.Context) error {
	GetStore(c).Clear()
	zap.L().Info("metric store cleared")
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Metrics cleared",
	})
}
