package services

import (
	"errors"
	"fmt"
	"strings"
)

// Domain failure taxonomy. Controllers translate these into HTTP statuses;
// anything unwrapped falls through as a 500.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	// Plan-level aggregates (plan_totals, macro_percentages, variety_metrics,
	// meal_coverage) are produced by the external recommender and stored
	// verbatim. RecomputeAggregates is a seam for a future server-side
	// implementation; until then it always returns this error so the stale-
	// after-substitution behavior stays visible instead of silently "fixed".
	ErrAggregatesExternal = errors.New("plan aggregates are owned by the external recommender")
)

// ValidationError carries a field -> message map for 400 responses.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
