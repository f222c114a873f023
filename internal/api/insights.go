package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloudwatchr/cloudwatchr/internal/webserver"
)

// registerInsightRoutes registers the AI insight endpoints. Both return
// canned responses, there is no model behind them.
func registerInsightRoutes() {
	webserver.ApiGET("/ai/insights", ListInsights)
	webserver.ApiPOST("/ai/analyze", AnalyzeMetrics)
}

// ListInsights returns the canned insight list
func ListInsights(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "AI Insights service operational",
		"insights": []map[string]string{
			{
				"type":        "anomaly",
				"description": "Sample insight - system performance normal",
			},
		},
	})
}

// AnalyzeMetrics accepts an arbitrary payload and returns the canned
// recommendation
func AnalyzeMetrics(c echo.Context) error {
	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return failBadRequest(c, "Invalid request body")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":        "Analysis complete",
		"recommendation": "All systems operating normally",
	})
}
