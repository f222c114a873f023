package domain

import (
	"testing"
	"time"
)

func validRequest() *MetricRequest {
	ts := time.Date(2024, 1, 20, 10, 30, 45, 123000000, time.UTC)
	latency := int64(150)
	status := 200
	return &MetricRequest{
		ServiceName: "user-service",
		Endpoint:    "/api/users/123",
		Timestamp:   &ts,
		LatencyMs:   &latency,
		StatusCode:  &status,
	}
}

func TestValidateAccepted(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MetricRequest)
	}{
		{"all required fields", func(r *MetricRequest) {}},
		{"status lower bound", func(r *MetricRequest) { *r.StatusCode = 100 }},
		{"status upper bound", func(r *MetricRequest) { *r.StatusCode = 599 }},
		{"latency of one", func(r *MetricRequest) { *r.LatencyMs = 1 }},
		{"optional fields set", func(r *MetricRequest) {
			id, region, method := "req-1", "us-east-1", "GET"
			r.RequestID, r.Region, r.Method = &id, &region, &method
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			if errs := req.Validate(); errs != nil {
				t.Errorf("Validate() = %v, want nil", errs)
			}
		})
	}
}

func TestValidateRejected(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*MetricRequest)
		wantField string
	}{
		{"empty serviceName", func(r *MetricRequest) { r.ServiceName = "" }, "serviceName"},
		{"blank serviceName", func(r *MetricRequest) { r.ServiceName = "   " }, "serviceName"},
		{"empty endpoint", func(r *MetricRequest) { r.Endpoint = "" }, "endpoint"},
		{"blank endpoint", func(r *MetricRequest) { r.Endpoint = "\t " }, "endpoint"},
		{"missing timestamp", func(r *MetricRequest) { r.Timestamp = nil }, "timestamp"},
		{"missing latency", func(r *MetricRequest) { r.LatencyMs = nil }, "latencyMs"},
		{"zero latency", func(r *MetricRequest) { *r.LatencyMs = 0 }, "latencyMs"},
		{"negative latency", func(r *MetricRequest) { *r.LatencyMs = -5 }, "latencyMs"},
		{"missing status", func(r *MetricRequest) { r.StatusCode = nil }, "statusCode"},
		{"status below range", func(r *MetricRequest) { *r.StatusCode = 99 }, "statusCode"},
		{"status above range", func(r *MetricRequest) { *r.StatusCode = 600 }, "statusCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			errs := req.Validate()
			if errs == nil {
				t.Fatalf("Validate() = nil, want error on %s", tt.wantField)
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, missing field %s", errs, tt.wantField)
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	req := &MetricRequest{}
	errs := req.Validate()
	if errs == nil {
		t.Fatal("Validate() = nil, want errors for every required field")
	}
	for _, field := range []string{"serviceName", "endpoint", "timestamp", "latencyMs", "statusCode"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("Validate() missing violation for %s: %v", field, errs)
		}
	}
	if len(errs) != 5 {
		t.Errorf("Validate() reported %d violations, want 5: %v", len(errs), errs)
	}
}

func TestValidateMessages(t *testing.T) {
	req := validRequest()
	req.ServiceName = " "
	*req.LatencyMs = 0
	*req.StatusCode = 600
	errs := req.Validate()
	if got := errs["serviceName"]; got != "serviceName must not be blank" {
		t.Errorf("serviceName message = %q", got)
	}
	if got := errs["latencyMs"]; got != "latencyMs must be positive" {
		t.Errorf("latencyMs message = %q", got)
	}
	if got := errs["statusCode"]; got != "statusCode must be at most 599" {
		t.Errorf("statusCode message = %q", got)
	}
}

func TestMetricCopiesOptionalFields(t *testing.T) {
	req := validRequest()
	id := "req-1"
	req.RequestID = &id

	m := req.Metric()
	id = "mutated"
	if m.RequestID == nil || *m.RequestID != "req-1" {
		t.Errorf("stored requestId aliases caller memory: %v", m.RequestID)
	}
	if m.Region != nil || m.Method != nil {
		t.Errorf("unset optionals should stay nil: region=%v method=%v", m.Region, m.Method)
	}
}
