package handler

import (
	"loandecision/internal/decision"
	dErrors "loandecision/pkg/domain-errors"
)

// DecisionRequest is the HTTP request body for POST /api/engine.
// Every field may be null; missing values become decision refusals, not
// transport errors.
type DecisionRequest struct {
	PersonalCode *string `json:"personalCode"`
	LoanAmount   *int    `json:"loanAmount"`
	LoanPeriod   *int    `json:"loanPeriod"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
// Field rules belong to the decision engine so they surface as refusals.
func (r *DecisionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// ToLoanRequest converts the body into a domain request. The pointers are
// copied so the engine never shares memory with the decoded body.
func (r *DecisionRequest) ToLoanRequest() decision.LoanRequest {
	req := decision.LoanRequest{}
	if r.PersonalCode != nil {
		req.PersonalCode = *r.PersonalCode
	}
	if r.LoanAmount != nil {
		amount := *r.LoanAmount
		req.Amount = &amount
	}
	if r.LoanPeriod != nil {
		period := *r.LoanPeriod
		req.Period = &period
	}
	return req
}
