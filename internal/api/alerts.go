package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cloudwatchr/cloudwatchr/internal/webserver"
)

// registerAlertRoutes registers the alerting endpoints. Alerting is a
// retention-only surface, no rule evaluation runs behind it.
func registerAlertRoutes() {
	webserver.ApiGET("/alerts", ListAlerts)
	webserver.ApiPOST("/alerts", CreateAlert)
}

// ListAlerts returns the retained alert records
func ListAlerts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Alerting service operational",
		"alerts":  GetAlerts(c).List(),
	})
}

// CreateAlert retains a posted alert record and assigns it an id
func CreateAlert(c echo.Context) error {
	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return failBadRequest(c, "Invalid request body")
	}

	alert := GetAlerts(c).Add(fields)
	zap.L().Info("alert created", zap.String("id", alert.ID))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Alert created successfully",
		"alert":   alert,
	})
}
