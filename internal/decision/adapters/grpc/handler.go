package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"loandecision/internal/decision"
	"loandecision/pkg/requestcontext"
)

// Evaluator is the decision operation the gRPC adapter exposes.
type Evaluator interface {
	Evaluate(ctx context.Context, req decision.LoanRequest) (*decision.EvaluateResult, error)
}

// DecisionHandler is a gRPC adapter that exposes the decision service.
// Refusals are regular responses; only unknown errors become gRPC errors.
type DecisionHandler struct {
	UnimplementedDecisionEngineServer
	service Evaluator
	logger  *slog.Logger
}

// NewDecisionHandler creates a gRPC decision handler.
func NewDecisionHandler(service Evaluator, logger *slog.Logger) *DecisionHandler {
	return &DecisionHandler{
		service: service,
		logger:  logger,
	}
}

// GetDecision evaluates a loan request.
func (h *DecisionHandler) GetDecision(ctx context.Context, req *GetDecisionRequest) (*GetDecisionResponse, error) {
	result, err := h.service.Evaluate(ctx, toLoanRequest(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "loan decision failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil, status.Error(codes.Internal, decision.UnknownErrorMessage)
	}
	return toResponse(result.Outcome), nil
}

func toLoanRequest(req *GetDecisionRequest) decision.LoanRequest {
	out := decision.LoanRequest{}
	if req == nil {
		return out
	}
	if req.PersonalCode != nil {
		out.PersonalCode = *req.PersonalCode
	}
	if req.LoanAmount != nil {
		amount := *req.LoanAmount
		out.Amount = &amount
	}
	if req.LoanPeriod != nil {
		period := *req.LoanPeriod
		out.Period = &period
	}
	return out
}

func toResponse(outcome decision.Outcome) *GetDecisionResponse {
	if !outcome.Approved() {
		return &GetDecisionResponse{
			Reason:  outcome.Reason.String(),
			Message: outcome.Message(),
		}
	}
	amount, period := outcome.Offer.Amount, outcome.Offer.Period
	return &GetDecisionResponse{
		Response:   true,
		LoanAmount: &amount,
		LoanPeriod: &period,
		Exact:      outcome.Exact,
		Message:    outcome.Message(),
	}
}
