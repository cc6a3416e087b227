package handler

import (
	"fmt"
	"net/http"

	"loandecision/internal/decision"
)

// StatusMode selects how refusals map onto HTTP status codes.
type StatusMode string

const (
	// StatusModeLegacy answers every decision with 200 and a response flag in the body.
	StatusModeLegacy StatusMode = "legacy"
	// StatusModeMapped answers invalid input with 400, refusals with 422 and
	// unknown errors with 500.
	StatusModeMapped StatusMode = "mapped"
)

// ParseStatusMode validates a configured status mode. Empty means legacy.
func ParseStatusMode(s string) (StatusMode, error) {
	switch StatusMode(s) {
	case "", StatusModeLegacy:
		return StatusModeLegacy, nil
	case StatusModeMapped:
		return StatusModeMapped, nil
	default:
		return "", fmt.Errorf("unknown status mode %q", s)
	}
}

func (m StatusMode) outcomeStatus(outcome decision.Outcome) int {
	if m != StatusModeMapped || outcome.Approved() {
		return http.StatusOK
	}
	if outcome.Reason.IsInvalidInput() {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func (m StatusMode) unknownErrorStatus() int {
	if m == StatusModeMapped {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
