package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cloudwatchr/cloudwatchr/internal/webserver"
	"github.com/cloudwatchr/cloudwatchr/pkg/metrics"
)

var bootTime = time.Now()

func registerHealthRoutes() {
	webserver.GET("/health", Health)
}

// Health reports liveness plus the latest system and process gauges
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "UP",
		"service":    "cloudwatchr",
		"uptime_sec": int64(time.Since(bootTime).Seconds()),
		"gauges":     metrics.Gauges(),
	})
}
