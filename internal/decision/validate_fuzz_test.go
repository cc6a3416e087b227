//go:build go1.18

package decision

import "testing"

// FuzzValidatePersonalCode checks that validation never panics and that
// every accepted code has the required length and can be classified or
// rejected without panicking.
func FuzzValidatePersonalCode(f *testing.F) {
	f.Add("")
	f.Add("50000000000")
	f.Add("1234567.1e2")
	f.Add("0x1.8p10000")
	f.Add("  Infinity ")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, code string) {
		amount, period := 5000, 20
		reason := Validate(LoanRequest{PersonalCode: code, Amount: &amount, Period: &period})
		if reason != "" {
			if reason != ReasonPersonalCodeInvalid {
				t.Fatalf("expected only personal code failures, got %s", reason)
			}
			return
		}

		if len(code) != PersonalCodeLength {
			t.Fatalf("accepted code of length %d", len(code))
		}

		modifier, known, err := Classify(code)
		if err == nil && known && modifier < 0 {
			t.Fatalf("negative modifier %d for %q", modifier, code)
		}
	})
}
