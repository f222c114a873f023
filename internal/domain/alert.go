package domain

import "time"

// Alert is an operator-submitted alert record. The service only retains
// what was posted, no evaluation or delivery happens server side.
type Alert struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"createdAt"`
	Fields    map[string]interface{} `json:"fields"`
}
