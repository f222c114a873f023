package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a violated field to its human-readable message.
// It is the only error kind the intake path produces.
type FieldErrors map[string]string

// Add records a violation for a field. The first message per field wins.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Merge copies violations from another set, prefixing each field name.
// Used by batch ingestion to key errors by element index.
func (e FieldErrors) Merge(prefix string, other FieldErrors) {
	for field, message := range other {
		e.Add(prefix+field, message)
	}
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
