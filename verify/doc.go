// Package verify checks a compiled layout against a symbol assignment.
//
// 🚀 What does it do?
//
//	For every row that carries a check, the formula and the row's own value
//	are both substituted with the current digits, evaluated, formatted in the
//	puzzle base and compared column by column:
//
//	  formula  "(AB-E)*100+BC"   →  "(12-9)*100+25"  →  325
//	  expected "DBC"             →  "325"            →  325   ✓
//
// ✨ Properties:
//   - Pure: nothing is mutated, neither the Layout nor the SymbolMap.
//   - Total: partial assignments never fail; unresolved rows are reported with
//     Resolved=false and the half-substituted text as their value.
//   - Safe for concurrent use as long as no goroutine edits a SymbolMap while
//     another verifies with it. Hand each goroutine its own Clone.
//
// ⚙️ Usage:
//
//	l, _ := layout.Compile(text, layout.WithMinimumBase(10))
//	for _, r := range verify.VerifyLayout(l, m) {
//		if r.Status == verify.Mismatch { fmt.Println(r.Index, r) }
//	}
//
// Formula constants (20, 100, 300, ...) are written in the puzzle base, so
// "100" in a base 12 puzzle is one hundred and forty-four.
package verify
