package decision

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		tail     string
		modifier int
		known    bool
	}{
		{"000", 0, false},
		{"050", 0, false},
		{"199", 0, false},
		{"200", ModifierInDebt, true},
		{"250", ModifierInDebt, true},
		{"399", ModifierInDebt, true},
		{"400", ModifierSegment1, true},
		{"485", ModifierSegment1, true},
		{"599", ModifierSegment1, true},
		{"600", ModifierSegment2, true},
		{"799", ModifierSegment2, true},
		{"800", ModifierSegment3, true},
		{"999", ModifierSegment3, true},
	}

	for _, tt := range tests {
		t.Run(tt.tail, func(t *testing.T) {
			modifier, known, err := Classify("00000000" + tt.tail)
			require.NoError(t, err)
			assert.Equal(t, tt.known, known)
			assert.Equal(t, tt.modifier, modifier)
		})
	}
}

func TestClassify_PartitionIsTotal(t *testing.T) {
	counts := map[string]int{}
	for d := 0; d <= 999; d++ {
		modifier, known, err := Classify(fmt.Sprintf("12345678%03d", d))
		require.NoError(t, err, "tail %03d", d)

		label := "unknown"
		if known {
			label = fmt.Sprint(modifier)
		}
		counts[label]++

		switch {
		case d < 200:
			assert.False(t, known, "tail %03d", d)
		case d < 400:
			assert.Equal(t, ModifierInDebt, modifier, "tail %03d", d)
		case d < 600:
			assert.Equal(t, ModifierSegment1, modifier, "tail %03d", d)
		case d < 800:
			assert.Equal(t, ModifierSegment2, modifier, "tail %03d", d)
		default:
			assert.Equal(t, ModifierSegment3, modifier, "tail %03d", d)
		}
	}

	assert.Equal(t, map[string]int{"unknown": 200, "0": 200, "100": 200, "300": 200, "1000": 200}, counts)
}

func TestClassify_NonIntegerTail(t *testing.T) {
	for _, code := range []string{"1234567.1e2", "12345678.9f", "ab"} {
		_, _, err := Classify(code)
		assert.ErrorIs(t, err, ErrUnclassifiableCode, code)
	}
}

func TestClassify_SignedTailIsUnknown(t *testing.T) {
	modifier, known, err := Classify("12345678-99")
	require.NoError(t, err)
	assert.False(t, known)
	assert.Zero(t, modifier)
}
