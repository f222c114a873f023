package api

import (
	"net/http"
	"testing"
)

func TestAlertsLifecycle(t *testing.T) {
	h := setupServer(t)

	rec, resp := doJSON(t, h, http.MethodGet, "/api/alerts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp["message"] != "Alerting service operational" {
		t.Errorf("message = %v", resp["message"])
	}
	if alerts := resp["alerts"].([]interface{}); len(alerts) != 0 {
		t.Errorf("alerts not empty on start: %v", alerts)
	}

	rec, resp = doJSON(t, h, http.MethodPost, "/api/alerts",
		`{"name":"high-latency","severity":"warning"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	if resp["message"] != "Alert created successfully" {
		t.Errorf("message = %v", resp["message"])
	}
	alert := resp["alert"].(map[string]interface{})
	if alert["id"] == "" || alert["id"] == nil {
		t.Errorf("alert id missing: %v", alert)
	}
	if created, _ := alert["createdAt"].(string); created == "" {
		t.Errorf("alert createdAt missing: %v", alert)
	}
	fields := alert["fields"].(map[string]interface{})
	if fields["name"] != "high-latency" {
		t.Errorf("alert fields = %v", fields)
	}

	_, resp = doJSON(t, h, http.MethodGet, "/api/alerts", "")
	if alerts := resp["alerts"].([]interface{}); len(alerts) != 1 {
		t.Errorf("alerts len = %d, want 1", len(alerts))
	}
}

func TestInsights(t *testing.T) {
	h := setupServer(t)

	rec, resp := doJSON(t, h, http.MethodGet, "/api/ai/insights", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp["message"] != "AI Insights service operational" {
		t.Errorf("message = %v", resp["message"])
	}
	insights := resp["insights"].([]interface{})
	if len(insights) != 1 {
		t.Fatalf("insights len = %d", len(insights))
	}

	rec, resp = doJSON(t, h, http.MethodPost, "/api/ai/analyze", `{"window":"1h"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze status = %d", rec.Code)
	}
	if resp["recommendation"] != "All systems operating normally" {
		t.Errorf("recommendation = %v", resp["recommendation"])
	}
}
