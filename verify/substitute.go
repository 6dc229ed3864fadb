package verify

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/cryptarithm/notation"
)

// Substitute rewrites formula into plain decimal arithmetic.
//
// Pass 1 replaces every assigned symbol with its digit character. Pass 2
// reads each maximal run of base digits as one number and writes it out in
// decimal, so "A4" in base 12 becomes "124". Runes that are neither assigned
// nor digits in base pass through untouched and make the later evaluation
// fail softly.
//
// Complexity: O(n·k) for n runes and runs of at most k digits.
func Substitute(formula string, m notation.SymbolMap, base int) string {
	var mapped strings.Builder
	mapped.Grow(len(formula))
	for _, r := range formula {
		if d, ok := m.Lookup(r); ok {
			r = d
		}
		mapped.WriteRune(r)
	}

	var out strings.Builder
	out.Grow(mapped.Len())
	run := make([]rune, 0, 8)
	flush := func() {
		if len(run) == 0 {
			return
		}
		out.WriteString(runToDecimal(run, base))
		run = run[:0]
	}
	for _, r := range mapped.String() {
		if notation.IsDigit(r, base) {
			run = append(run, r)
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()

	return out.String()
}

// runToDecimal converts the base digits in run to a decimal string. Leading
// zeros are dropped; a run of zeros is "0".
func runToDecimal(run []rune, base int) string {
	for len(run) > 1 && run[0] == '0' {
		run = run[1:]
	}
	b := big.NewInt(int64(base))
	v := new(big.Int)
	for _, r := range run {
		d, _ := notation.DigitValue(r)
		v.Mul(v, b)
		v.Add(v, big.NewInt(int64(d)))
	}

	return v.String()
}
