package decision

// Loan bounds. Amounts and periods are dimensionless integers to the engine;
// the boundary layer renders them as euros and months.
const (
	MinAmount = 2000
	MaxAmount = 10000
	MinPeriod = 12
	MaxPeriod = 60
)

// LoanRequest is the raw applicant input. Nil amount or period means the
// field was absent from the request.
type LoanRequest struct {
	PersonalCode string
	Amount       *int
	Period       *int
}

// Offer is a concrete amount and period the engine is willing to extend.
type Offer struct {
	Amount int
	Period int
}

// Outcome is the result of a decision: either an offer or a failure reason.
// A zero Reason means an offer was produced.
type Outcome struct {
	Offer  Offer
	Exact  bool
	Reason Reason
}

// Approved reports whether the outcome carries an offer.
func (o Outcome) Approved() bool {
	return o.Reason == ""
}

// Label returns a short, stable label for metrics and logs.
func (o Outcome) Label() string {
	switch {
	case !o.Approved():
		return "refused"
	case o.Exact:
		return "approved"
	default:
		return "adjusted"
	}
}

// Message returns the user-facing text for the outcome.
func (o Outcome) Message() string {
	switch {
	case !o.Approved():
		return o.Reason.Message()
	case o.Exact:
		return "Success! We can offer you this loan:"
	default:
		return "We can offer you this loan instead:"
	}
}

func offer(amount, period int, exact bool) Outcome {
	return Outcome{Offer: Offer{Amount: amount, Period: period}, Exact: exact}
}

func refuse(reason Reason) Outcome {
	return Outcome{Reason: reason}
}

func inAmountRange(amount int) bool {
	return MinAmount <= amount && amount <= MaxAmount
}

func inPeriodRange(period int) bool {
	return MinPeriod <= period && period <= MaxPeriod
}
