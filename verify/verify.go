package verify

import (
	"github.com/katalvlaran/cryptarithm/expr"
	"github.com/katalvlaran/cryptarithm/layout"
	"github.com/katalvlaran/cryptarithm/notation"
)

// LineResult is the check outcome of the row at Index in Layout.Items.
type LineResult struct {
	CheckResult
	Index int
	Item  layout.LineItem
}

// VerifyLine checks one row under assignment m in the given base. A row
// without a formula is Unchecked.
func VerifyLine(item layout.LineItem, m notation.SymbolMap, base int, opts ...Option) CheckResult {
	if !item.HasCheck() {
		return CheckResult{Status: Unchecked}
	}
	o := gatherOptions(opts...)

	computed, okC := expr.Compute(Substitute(item.Formula, m, base), base, o.fracDigits)
	expected, okE := expr.Compute(Substitute(item.Expected, m, base), base, o.fracDigits)
	res := Check(computed, expected)
	res.Resolved = okC && okE

	return res
}

// VerifyLayout checks every row of l and returns one result per item, in
// display order. A nil layout yields nil.
func VerifyLayout(l *layout.Layout, m notation.SymbolMap, opts ...Option) []LineResult {
	if l == nil {
		return nil
	}
	out := make([]LineResult, len(l.Items))
	for i, it := range l.Items {
		out[i] = LineResult{
			CheckResult: VerifyLine(it, m, l.Base, opts...),
			Index:       i,
			Item:        it,
		}
	}

	return out
}

// Summary counts the outcomes of a verification pass.
type Summary struct {
	Checked    int
	Matched    int
	Mismatched int
	Unresolved int
}

// Solved reports whether every checked row matched.
func (s Summary) Solved() bool { return s.Checked > 0 && s.Matched == s.Checked }

// Summarize tallies results. Unresolved rows also count as Mismatched.
func Summarize(results []LineResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case Match:
			s.Checked++
			s.Matched++
		case Mismatch:
			s.Checked++
			s.Mismatched++
			if !r.Resolved {
				s.Unresolved++
			}
		case Unchecked:
		}
	}

	return s
}
