package handler

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"loandecision/internal/decision"
	"loandecision/pkg/platform/httputil"
	"loandecision/pkg/requestcontext"
)

// Service defines the interface for decision operations.
type Service interface {
	Evaluate(ctx context.Context, req decision.LoanRequest) (*decision.EvaluateResult, error)
}

// Handler wires decision endpoints to the decision service.
type Handler struct {
	service    Service
	logger     *slog.Logger
	statusMode StatusMode
}

// New constructs a decision handler with its dependencies.
func New(service Service, logger *slog.Logger, statusMode StatusMode) *Handler {
	if statusMode == "" {
		statusMode = StatusModeLegacy
	}
	return &Handler{
		service:    service,
		logger:     logger,
		statusMode: statusMode,
	}
}

// Register mounts decision endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/engine", h.HandleDecision)
}

// HandleDecision handles POST /api/engine requests.
func (h *Handler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()
	defer h.recoverUnknownError(w, r)

	req, ok := httputil.DecodeAndPrepare[DecisionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Evaluate(ctx, req.ToLoanRequest())
	if err != nil {
		h.logger.ErrorContext(ctx, "loan decision failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteJSON(w, h.statusMode.unknownErrorStatus(), UnknownError())
		return
	}

	h.logger.InfoContext(ctx, "loan decision evaluated",
		"request_id", requestID,
		"outcome", result.Outcome.Label(),
		"reason", result.Outcome.Reason,
		"evaluated_at", result.EvaluatedAt,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, h.statusMode.outcomeStatus(result.Outcome), FromOutcome(result.Outcome))
}

// recoverUnknownError answers a panic during a decision like any other
// unknown error, so callers see the decision response shape.
func (h *Handler) recoverUnknownError(w http.ResponseWriter, r *http.Request) {
	rec := recover()
	if rec == nil {
		return
	}
	if rec == http.ErrAbortHandler {
		panic(rec)
	}
	ctx := r.Context()
	h.logger.ErrorContext(ctx, "loan decision panicked",
		"request_id", requestcontext.RequestID(ctx),
		"panic", rec,
		"stack", string(debug.Stack()),
	)
	httputil.WriteJSON(w, h.statusMode.unknownErrorStatus(), UnknownError())
}
