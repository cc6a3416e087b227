package decision

import "errors"

// Reason identifies why a loan could not be offered.
type Reason string

// Invalid-input reasons: the caller sent data outside the accepted domain.
const (
	ReasonPersonalCodeInvalid Reason = "PERSONAL_CODE_INVALID"
	ReasonLoanAmountInvalid   Reason = "LOAN_AMOUNT_INVALID"
	ReasonLoanPeriodInvalid   Reason = "LOAN_PERIOD_INVALID"
	ReasonDataInvalid         Reason = "DATA_INVALID"
)

// Cannot-loan reasons: the input is valid but no offer can be made.
const (
	ReasonUnknownCreditModifier Reason = "UNKNOWN_CREDIT_MODIFIER"
	ReasonClientInDebt          Reason = "CLIENT_IN_DEBT"
	ReasonNoPossibleLoans       Reason = "NO_POSSIBLE_LOANS"
)

// UnknownErrorMessage is rendered for failures that do not map to a Reason.
const UnknownErrorMessage = "An unknown error occurred."

// ErrUnclassifiableCode is returned when the risk tail of a personal code
// cannot be read as an integer.
var ErrUnclassifiableCode = errors.New("personal code tail is not an integer")

var reasonMessages = map[Reason]string{
	ReasonPersonalCodeInvalid:   "Invalid personal code. Must consist of 11 digits.",
	ReasonLoanAmountInvalid:     "Invalid loan amount. Must be between 2000 and 10000 euros.",
	ReasonLoanPeriodInvalid:     "Invalid loan period. Must be between 12 and 60 months.",
	ReasonDataInvalid:           "Some of the data was invalid.",
	ReasonUnknownCreditModifier: "Your personal code's credit modifier value is unknown (more info in repository readme).",
	ReasonClientInDebt:          "Client is in debt! Can't loan any money :(",
	ReasonNoPossibleLoans:       "No loans are currently available for you. Try again with different values.",
}

// Message returns the fixed user-facing text for the reason.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return "Loan could not be given."
}

// IsInvalidInput reports whether the reason blames the caller's input.
func (r Reason) IsInvalidInput() bool {
	switch r {
	case ReasonPersonalCodeInvalid, ReasonLoanAmountInvalid, ReasonLoanPeriodInvalid, ReasonDataInvalid:
		return true
	default:
		return false
	}
}

// IsCannotLoan reports whether the reason is a domain refusal.
func (r Reason) IsCannotLoan() bool {
	switch r {
	case ReasonUnknownCreditModifier, ReasonClientInDebt, ReasonNoPossibleLoans:
		return true
	default:
		return false
	}
}

func (r Reason) String() string {
	return string(r)
}
