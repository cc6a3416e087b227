package decision

import "fmt"

// Engine runs validation, risk classification and offer resolution for a
// single request. It holds no state and is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Decide produces the outcome for a request. The error return is reserved
// for failures that have no Reason; callers must not expose its detail.
func (e *Engine) Decide(req LoanRequest) (Outcome, error) {
	if reason := Validate(req); reason != "" {
		return refuse(reason), nil
	}

	modifier, known, err := Classify(req.PersonalCode)
	if err != nil {
		return Outcome{}, fmt.Errorf("decide: %w", err)
	}
	if !known {
		return refuse(ReasonUnknownCreditModifier), nil
	}
	if modifier == ModifierInDebt {
		return refuse(ReasonClientInDebt), nil
	}

	amount, period := *req.Amount, *req.Period
	return Resolve(ResolveInput{
		Amount:         &amount,
		Period:         &period,
		CreditModifier: &modifier,
	}), nil
}
