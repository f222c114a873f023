package domain

import (
	"strings"
	"time"
)

// Metric is one stored metric event describing a single observed API
// request/response. Once stored a Metric is never mutated, there is no
// update operation anywhere in the system.
type Metric struct {
	ID          int64     `json:"id"`
	ServiceName string    `json:"serviceName"`
	Endpoint    string    `json:"endpoint"`
	Timestamp   time.Time `json:"timestamp"`
	LatencyMs   int64     `json:"latencyMs"`
	StatusCode  int       `json:"statusCode"`
	RequestID   *string   `json:"requestId"`
	Region      *string   `json:"region"`
	Method      *string   `json:"method"`
}

// MetricRequest is a candidate metric event submitted for ingestion.
// Required numeric fields and the timestamp are pointers so that an
// absent JSON field is distinguishable from a zero value.
type MetricRequest struct {
	ServiceName string     `json:"serviceName"`
	Endpoint    string     `json:"endpoint"`
	Timestamp   *time.Time `json:"timestamp"`
	LatencyMs   *int64     `json:"latencyMs"`
	StatusCode  *int       `json:"statusCode"`
	RequestID   *string    `json:"requestId"`
	Region      *string    `json:"region"`
	Method      *string    `json:"method"`
}

// Validate checks every field constraint and collects all violations,
// not just the first one. latencyMs must be strictly positive and
// statusCode must fall in [100, 599].
func (r *MetricRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(r.ServiceName) == "" {
		errs.Add("serviceName", "serviceName must not be blank")
	}
	if strings.TrimSpace(r.Endpoint) == "" {
		errs.Add("endpoint", "endpoint must not be blank")
	}
	if r.Timestamp == nil {
		errs.Add("timestamp", "timestamp must not be null")
	}
	switch {
	case r.LatencyMs == nil:
		errs.Add("latencyMs", "latencyMs must not be null")
	case *r.LatencyMs <= 0:
		errs.Add("latencyMs", "latencyMs must be positive")
	}
	switch {
	case r.StatusCode == nil:
		errs.Add("statusCode", "statusCode must not be null")
	case *r.StatusCode < 100:
		errs.Add("statusCode", "statusCode must be at least 100")
	case *r.StatusCode > 599:
		errs.Add("statusCode", "statusCode must be at most 599")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Metric builds the stored representation of a request that passed
// validation. The identifier is assigned by the store. Optional string
// values are copied so the stored record does not alias caller memory.
func (r *MetricRequest) Metric() *Metric {
	return &Metric{
		ServiceName: r.ServiceName,
		Endpoint:    r.Endpoint,
		Timestamp:   *r.Timestamp,
		LatencyMs:   *r.LatencyMs,
		StatusCode:  *r.StatusCode,
		RequestID:   cloneString(r.RequestID),
		Region:      cloneString(r.Region),
		Method:      cloneString(r.Method),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
