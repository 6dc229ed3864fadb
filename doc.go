// Package cryptarithm turns cryptarithm notation into worked, checkable
// arithmetic: the long-hand layout of a multiplication, long division or
// square/cube root in which every digit has been replaced by a symbol.
//
// 🚀 What is cryptarithm?
//
//	A small, dependency-light toolkit that brings together:
//		• Notation: tokenizer, radix inference, base-36 digits, symbol maps
//		• Layout: a compiler from notation to aligned rows with check formulas
//		• Expr: a closed-grammar arithmetic evaluator and base formatting
//		• Verify: substitution, column-by-column checks, whole-layout passes
//		• Render: plain-text drawing with verdicts
//		• Puzzle: TOML/YAML puzzle documents
//
// ✨ Why?
//
//   - Any base from 2 to 36: the working base is the number of distinct
//     symbols, or a minimum the puzzle states.
//   - Forgiving: structural mistakes become diagnostics, arithmetic that
//     cannot be evaluated yet becomes "unresolved", nothing panics on input.
//   - Pure verification: safe to call from many goroutines with their own
//     symbol map snapshots.
//
// Under the hood:
//
//	notation/: tokens, RadixTable, SymbolMap, digit alphabet
//	layout/  : Compile, LineItem, Layout, Kind, Diagnostic
//	expr/    : Evaluate, FormatBased, Compute
//	verify/  : Substitute, Check, VerifyLine, VerifyLayout
//	render/  : Text, Write
//	puzzle/  : Puzzle, Load, Save, Decode, Encode
//	cmd/cryptarithm: command line front end
//
// Quick example (1225 = 35²):
//
//	    D  C
//	  √AB BC         A=1 B=2 C=5 D=3 E=9 F=0
//	  - E            D*D            = 9  ✓
//	    D BC         (AB-E)*100+BC  = 325 ✓
//	  - D BC         ((D*20)+C)*C   = 325 ✓
//	       F         DBC-DBC        = 0  ✓
//
//	go install github.com/katalvlaran/cryptarithm/cmd/cryptarithm@latest
package cryptarithm
