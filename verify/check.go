package verify

import (
	"fmt"
	"strings"
)

// Status is the outcome of one row check.
type Status int

const (
	// Unchecked rows carry no formula.
	Unchecked Status = iota
	Match
	Mismatch
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Unchecked:
		return "Unchecked"
	case Match:
		return "Match"
	case Mismatch:
		return "Mismatch"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DigitVerdict compares one column of a mismatching row.
type DigitVerdict struct {
	// Position counts columns from the right, starting at 0 for the units.
	Position int

	// Computed is the digit the formula produced, '?' past its left edge.
	Computed rune

	// Expected is the digit written in the row, '?' past its left edge.
	Expected rune

	// Match reports Computed == Expected.
	Match bool
}

// CheckResult is the outcome of comparing a computed value with the value a
// row claims.
type CheckResult struct {
	Status Status

	// Computed and Expected are the compared texts in the puzzle base. When a
	// side could not be evaluated it holds the substituted expression.
	Computed string
	Expected string

	// Resolved is false when either side could not be evaluated, typically
	// because a symbol is still unassigned.
	Resolved bool

	// Verdicts holds one entry per column, ordered by Position, for Mismatch.
	Verdicts []DigitVerdict
}

// Check compares computed with expected. Identical texts Match; otherwise
// both are right-aligned and compared column by column from the units place
// outward, the way a carry is checked by hand.
//
// Complexity: O(max(len(computed), len(expected))).
func Check(computed, expected string) CheckResult {
	res := CheckResult{Computed: computed, Expected: expected, Resolved: true}
	if computed == expected {
		res.Status = Match
		return res
	}

	res.Status = Mismatch
	c, e := []rune(computed), []rune(expected)
	width := len(c)
	if len(e) > width {
		width = len(e)
	}
	res.Verdicts = make([]DigitVerdict, width)
	for pos := 0; pos < width; pos++ {
		v := DigitVerdict{Position: pos, Computed: column(c, pos), Expected: column(e, pos)}
		v.Match = v.Computed == v.Expected
		res.Verdicts[pos] = v
	}

	return res
}

// column returns the rune pos places from the right of r, or '?'.
func column(r []rune, pos int) rune {
	if pos >= len(r) {
		return '?'
	}

	return r[len(r)-1-pos]
}

// Marks renders the verdicts left to right: '.' for a matching column, '^'
// for a wrong one. Empty unless the result is a Mismatch.
func (r CheckResult) Marks() string {
	var sb strings.Builder
	for i := len(r.Verdicts) - 1; i >= 0; i-- {
		if r.Verdicts[i].Match {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('^')
		}
	}

	return sb.String()
}

// String renders the result for a terminal, e.g. "125 != 123 (..^)".
func (r CheckResult) String() string {
	switch r.Status {
	case Match:
		return "= " + r.Computed
	case Mismatch:
		return fmt.Sprintf("%s != %s (%s)", r.Computed, r.Expected, r.Marks())
	default:
		return ""
	}
}
