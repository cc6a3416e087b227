package decision

import "github.com/shopspring/decimal"

// ResolveInput carries the values the offer rules work on. Nil fields mean
// the value is missing.
type ResolveInput struct {
	Amount         *int
	Period         *int
	CreditModifier *int
}

// Resolve finds the best offer for a request under a credit modifier.
// This is pure domain logic - no I/O, no side effects.
//
// Rule priority (fail-fast):
//  1. Missing data
//  2. Amount and period bounds
//  3. Non-positive modifier (in debt)
//  4. Requested loan is affordable as-is
//  5. Highest affordable amount at the requested period
//  6. Shortest period for the minimum amount
func Resolve(in ResolveInput) Outcome {
	// Rule 1: every value must be present
	if in.Amount == nil || in.Period == nil || in.CreditModifier == nil {
		return refuse(ReasonDataInvalid)
	}
	amount, period, modifier := *in.Amount, *in.Period, *in.CreditModifier

	// Rule 2: bounds are re-checked so the rules hold without a validator in front
	if !inAmountRange(amount) {
		return refuse(ReasonLoanAmountInvalid)
	}
	if !inPeriodRange(period) {
		return refuse(ReasonLoanPeriodInvalid)
	}

	// Rule 3: zero or negative modifier cannot finance anything
	if modifier <= 0 {
		return refuse(ReasonClientInDebt)
	}

	// Rule 4: score >= 1 keeps the request verbatim
	if Score(modifier, amount, period).GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return offer(amount, period, true)
	}

	// Rule 5: keep the period, shrink the amount
	if highest := highestLoan(modifier, period); inAmountRange(highest) {
		return offer(highest, period, false)
	}

	// Rule 6: stretch the period for the minimum amount
	if lowest := lowestPeriod(modifier); inPeriodRange(lowest) {
		return offer(MinAmount, lowest, false)
	}

	return refuse(ReasonNoPossibleLoans)
}

// Score is the affordability ratio (modifier * period) / amount.
// A score of at least 1 means the request is affordable as-is.
func Score(modifier, amount, period int) decimal.Decimal {
	return decimal.NewFromInt(int64(modifier) * int64(period)).
		Div(decimal.NewFromInt(int64(amount)))
}

func highestLoan(modifier, period int) int {
	return int(decimal.NewFromInt(int64(modifier) * int64(period)).Floor().IntPart())
}

func lowestPeriod(modifier int) int {
	return int(decimal.NewFromInt(MinAmount).
		Div(decimal.NewFromInt(int64(modifier))).
		Ceil().
		IntPart())
}
