package decision

import (
	"errors"
	"strconv"
	"strings"
)

// PersonalCodeLength is the exact length a personal code must have.
const PersonalCodeLength = 11

// Validate checks a raw request against the accepted domain.
// Checks run code, amount, period; the first failure is returned.
// An empty Reason means the request is valid.
func Validate(req LoanRequest) Reason {
	if !validPersonalCode(req.PersonalCode) {
		return ReasonPersonalCodeInvalid
	}
	if req.Amount == nil || !inAmountRange(*req.Amount) {
		return ReasonLoanAmountInvalid
	}
	if req.Period == nil || !inPeriodRange(*req.Period) {
		return ReasonLoanPeriodInvalid
	}
	return ""
}

func validPersonalCode(code string) bool {
	return len(code) == PersonalCodeLength && isNumeric(code)
}

// isNumeric reports whether s reads as a real number under lenient rules:
// surrounding control characters and spaces are ignored, a trailing d/D/f/F
// type suffix is allowed, and values that overflow to infinity still count.
// Codes such as "1234567.890" are accepted.
func isNumeric(s string) bool {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
	if s == "" {
		return false
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(s)-len(unsigned) > 1 {
		return false
	}
	if unsigned == "NaN" || unsigned == "Infinity" {
		return true
	}
	// strconv accepts spellings like "inf", "nan" and digit separators that
	// the lenient grammar does not.
	if strings.ContainsAny(unsigned, "iInN_") {
		return false
	}

	if !isHex(unsigned) || strings.ContainsAny(unsigned, "pP") {
		switch s[len(s)-1] {
		case 'd', 'D', 'f', 'F':
			s = s[:len(s)-1]
		}
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func isHex(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
