package handler

import "loandecision/internal/decision"

// DecisionResponse is the HTTP response for POST /api/engine.
// LoanAmount and LoanPeriod are null when no offer is made.
type DecisionResponse struct {
	Response   bool   `json:"response"`
	LoanAmount *int   `json:"loanAmount"`
	LoanPeriod *int   `json:"loanPeriod"`
	Exact      bool   `json:"exact"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message"`
}

// FromOutcome converts a domain outcome to an HTTP response.
func FromOutcome(outcome decision.Outcome) *DecisionResponse {
	if !outcome.Approved() {
		return &DecisionResponse{
			Reason:  outcome.Reason.String(),
			Message: outcome.Message(),
		}
	}
	amount, period := outcome.Offer.Amount, outcome.Offer.Period
	return &DecisionResponse{
		Response:   true,
		LoanAmount: &amount,
		LoanPeriod: &period,
		Exact:      outcome.Exact,
		Message:    outcome.Message(),
	}
}

// UnknownError is the response for failures without a decision reason.
func UnknownError() *DecisionResponse {
	return &DecisionResponse{Message: decision.UnknownErrorMessage}
}
