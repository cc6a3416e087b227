package decision

import (
	"fmt"
	"strconv"
)

// riskTailLength is the number of trailing characters that select a credit modifier.
const riskTailLength = 3

// Credit modifiers for each risk band of the personal code tail.
const (
	ModifierInDebt   = 0
	ModifierSegment1 = 100
	ModifierSegment2 = 300
	ModifierSegment3 = 1000
)

// Classify maps a personal code to its credit modifier using the last three
// characters of the code:
//
//	000-199 unknown
//	200-399 0 (in debt)
//	400-599 100
//	600-799 300
//	800-999 1000
//
// known is false when the tail falls into the unmapped band. An error is
// returned only when the tail cannot be read as an integer.
func Classify(personalCode string) (modifier int, known bool, err error) {
	if len(personalCode) < riskTailLength {
		return 0, false, fmt.Errorf("classify %q: %w", personalCode, ErrUnclassifiableCode)
	}
	tail := personalCode[len(personalCode)-riskTailLength:]
	d, err := strconv.Atoi(tail)
	if err != nil {
		return 0, false, fmt.Errorf("classify tail %q: %w", tail, ErrUnclassifiableCode)
	}

	switch {
	case 200 <= d && d < 400:
		return ModifierInDebt, true, nil
	case 400 <= d && d < 600:
		return ModifierSegment1, true, nil
	case 600 <= d && d < 800:
		return ModifierSegment2, true, nil
	case 800 <= d:
		return ModifierSegment3, true, nil
	default:
		return 0, false, nil
	}
}
