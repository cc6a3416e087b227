package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"loandecision/internal/decision"
	"loandecision/pkg/requestcontext"
	"loandecision/pkg/testutil"
)

// HandlerSuite provides shared test setup for decision handler tests.
// Uses the real engine; handler tests validate HTTP concerns
// (parsing, status mapping, response shape).
type HandlerSuite struct {
	suite.Suite
	legacy http.Handler
	mapped http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.legacy = newDecisionRouter(StatusModeLegacy)
	s.mapped = newDecisionRouter(StatusModeMapped)
}

func newDecisionRouter(mode StatusMode) http.Handler {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := decision.NewService(decision.NewEngine(), decision.WithLogger(logger))
	return routerFor(svc, logger, mode)
}

func routerFor(svc Service, logger *slog.Logger, mode StatusMode) http.Handler {
	r := chi.NewRouter()
	New(svc, logger, mode).Register(r)
	return r
}

type serviceFunc func(context.Context, decision.LoanRequest) (*decision.EvaluateResult, error)

func (f serviceFunc) Evaluate(ctx context.Context, req decision.LoanRequest) (*decision.EvaluateResult, error) {
	return f(ctx, req)
}

func (s *HandlerSuite) post(router http.Handler, body any) *httptest.ResponseRecorder {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/engine", body)
	return testutil.DoRequest(router, req)
}

func (s *HandlerSuite) decode(rr *httptest.ResponseRecorder) DecisionResponse {
	return testutil.DecodeJSON[DecisionResponse](s.T(), rr)
}

func decisionBody(code string, amount, period int) map[string]any {
	return map[string]any{"personalCode": code, "loanAmount": amount, "loanPeriod": period}
}

func (s *HandlerSuite) TestExactOffer() {
	rr := s.post(s.legacy, decisionBody("00000000400", 2000, 20))
	testutil.AssertStatusOK(s.T(), rr)
	s.Equal("application/json", rr.Header().Get("Content-Type"))

	resp := s.decode(rr)
	s.True(resp.Response)
	s.True(resp.Exact)
	s.Require().NotNil(resp.LoanAmount)
	s.Require().NotNil(resp.LoanPeriod)
	s.Equal(2000, *resp.LoanAmount)
	s.Equal(20, *resp.LoanPeriod)
	s.Equal("Success! We can offer you this loan:", resp.Message)
	s.Empty(resp.Reason)
}

func (s *HandlerSuite) TestDecisionLogCarriesEvaluationTime() {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	svc := decision.NewService(decision.NewEngine(), decision.WithLogger(logger))
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/engine", decisionBody("00000000400", 2000, 20))
	req = req.WithContext(requestcontext.WithTime(req.Context(), fixed))
	testutil.AssertStatusOK(s.T(), testutil.DoRequest(routerFor(svc, logger, StatusModeLegacy), req))

	s.Contains(logs.String(), "loan decision evaluated")
	s.Contains(logs.String(), "evaluated_at=2026-01-02T03:04:05.000Z")
}

func (s *HandlerSuite) TestAdjustedOffer() {
	resp := s.decode(s.post(s.legacy, decisionBody("00000000600", 10000, 15)))
	s.True(resp.Response)
	s.False(resp.Exact)
	s.Equal(4500, *resp.LoanAmount)
	s.Equal(15, *resp.LoanPeriod)
	s.Equal("We can offer you this loan instead:", resp.Message)
}

func (s *HandlerSuite) TestLegacyModeRefusalsReturnOK() {
	cases := map[string]struct {
		body    any
		reason  decision.Reason
		message string
	}{
		"invalid code": {
			body:    decisionBody("123", 5000, 20),
			reason:  decision.ReasonPersonalCodeInvalid,
			message: "Invalid personal code. Must consist of 11 digits.",
		},
		"invalid amount": {
			body:    decisionBody("50000000000", 1999, 20),
			reason:  decision.ReasonLoanAmountInvalid,
			message: "Invalid loan amount. Must be between 2000 and 10000 euros.",
		},
		"invalid period": {
			body:    decisionBody("50000000000", 5000, 61),
			reason:  decision.ReasonLoanPeriodInvalid,
			message: "Invalid loan period. Must be between 12 and 60 months.",
		},
		"in debt": {
			body:    decisionBody("12345678250", 5000, 20),
			reason:  decision.ReasonClientInDebt,
			message: "Client is in debt! Can't loan any money :(",
		},
		"unknown modifier": {
			body:    decisionBody("12345678050", 5000, 20),
			reason:  decision.ReasonUnknownCreditModifier,
			message: "Your personal code's credit modifier value is unknown (more info in repository readme).",
		},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			rr := s.post(s.legacy, tc.body)
			testutil.AssertStatusOK(s.T(), rr)

			resp := s.decode(rr)
			s.False(resp.Response)
			s.Nil(resp.LoanAmount)
			s.Nil(resp.LoanPeriod)
			s.Equal(string(tc.reason), resp.Reason)
			s.Equal(tc.message, resp.Message)
		})
	}
}

func (s *HandlerSuite) TestNullFieldsAreRefusals() {
	s.Run("null code", func() {
		body := map[string]any{"personalCode": nil, "loanAmount": 5000, "loanPeriod": 20}
		resp := s.decode(s.post(s.legacy, body))
		s.Equal(string(decision.ReasonPersonalCodeInvalid), resp.Reason)
	})

	s.Run("missing amount", func() {
		body := map[string]any{"personalCode": "50000000000", "loanPeriod": 20}
		resp := s.decode(s.post(s.legacy, body))
		s.Equal(string(decision.ReasonLoanAmountInvalid), resp.Reason)
	})

	s.Run("null period", func() {
		body := map[string]any{"personalCode": "50000000000", "loanAmount": 5000, "loanPeriod": nil}
		resp := s.decode(s.post(s.legacy, body))
		s.Equal(string(decision.ReasonLoanPeriodInvalid), resp.Reason)
	})
}

func (s *HandlerSuite) TestUnknownError() {
	body := decisionBody("1234567.1e2", 5000, 20)

	s.Run("legacy mode hides the error behind 200", func() {
		rr := s.post(s.legacy, body)
		testutil.AssertStatusOK(s.T(), rr)
		resp := s.decode(rr)
		s.False(resp.Response)
		s.Equal("An unknown error occurred.", resp.Message)
		s.Empty(resp.Reason)
	})

	s.Run("mapped mode returns 500", func() {
		rr := s.post(s.mapped, body)
		testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
		s.Equal("An unknown error occurred.", s.decode(rr).Message)
	})
}

func (s *HandlerSuite) TestPanicIsReportedAsUnknownError() {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	panicking := serviceFunc(func(context.Context, decision.LoanRequest) (*decision.EvaluateResult, error) {
		panic("engine exploded")
	})
	body := decisionBody("00000000400", 2000, 20)

	s.Run("legacy mode", func() {
		rr := s.post(routerFor(panicking, logger, StatusModeLegacy), body)
		testutil.AssertStatusOK(s.T(), rr)
		resp := s.decode(rr)
		s.False(resp.Response)
		s.Nil(resp.LoanAmount)
		s.Nil(resp.LoanPeriod)
		s.Equal("An unknown error occurred.", resp.Message)
	})

	s.Run("mapped mode", func() {
		rr := s.post(routerFor(panicking, logger, StatusModeMapped), body)
		testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
		s.Equal("An unknown error occurred.", s.decode(rr).Message)
	})

	s.Contains(logs.String(), "loan decision panicked")
	s.NotContains(logs.String(), "00000000400")
}

func (s *HandlerSuite) TestMappedModeStatuses() {
	s.Run("offer is 200", func() {
		testutil.AssertStatusOK(s.T(), s.post(s.mapped, decisionBody("00000000800", 9577, 58)))
	})

	s.Run("invalid input is 400", func() {
		rr := s.post(s.mapped, decisionBody("50000000000", 5000, 11))
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
		s.Equal(string(decision.ReasonLoanPeriodInvalid), s.decode(rr).Reason)
	})

	s.Run("refusal is 422", func() {
		rr := s.post(s.mapped, decisionBody("12345678050", 5000, 20))
		testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
		s.Equal(string(decision.ReasonUnknownCreditModifier), s.decode(rr).Reason)
	})
}

func (s *HandlerSuite) TestMalformedJSON() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/engine", `{"personalCode":`)
	rr := testutil.DoRequest(s.legacy, req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *HandlerSuite) TestFractionalAmountIsRejected() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/engine",
		`{"personalCode":"50000000000","loanAmount":5000.5,"loanPeriod":20}`)
	rr := testutil.DoRequest(s.legacy, req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func TestParseStatusMode(t *testing.T) {
	for in, want := range map[string]StatusMode{"": StatusModeLegacy, "legacy": StatusModeLegacy, "mapped": StatusModeMapped} {
		got, err := ParseStatusMode(in)
		if err != nil {
			t.Fatalf("ParseStatusMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseStatusMode(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseStatusMode("strict"); err == nil {
		t.Fatalf("expected unknown status mode to be rejected")
	}
}
