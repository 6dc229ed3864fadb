// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cryptarithm/notation"
)

// Kind is the arithmetic family a notation describes. It is inferred from the
// first decisive token and then fixed for the rest of the compile.
type Kind int

const (
	// Automatic means nothing decisive has been seen yet.
	Automatic Kind = iota
	SquareRoot
	CubeRoot
	Multiplication
	Division
	Addition
	Subtraction
	Equations
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Automatic:
		return "Automatic"
	case SquareRoot:
		return "SquareRoot"
	case CubeRoot:
		return "CubeRoot"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Equations:
		return "Equations"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Row prefixes with a meaning beyond the operator glyph they print as.
const (
	PrefixSquareRoot = "2" // radical sign √ in front of the radicand
	PrefixCubeRoot   = "3" // radical sign ∛ in front of the radicand
)

// LineItem is one row of the rendered computation.
type LineItem struct {
	// Prefix is the glyph printed left of the row: "", "-", "+", "*", or
	// PrefixSquareRoot / PrefixCubeRoot for a radicand.
	Prefix string

	// Indent is the horizontal shift, in symbol widths, that places the row
	// under the right place values.
	Indent int

	// Content is the row's symbols, space padded so its right edge lines up
	// with the rows it is checked against.
	Content string

	// Formula is the arithmetic template, in puzzle symbols, whose value must
	// equal Expected. Empty when the row carries no independent check.
	Formula string

	// Expected is the operand token this row claims as its value.
	Expected string

	// Overline marks rows drawn with a rule above them: results and radicands.
	Overline bool
}

// IsBlank reports whether the row is an equation separator.
func (it LineItem) IsBlank() bool {
	return it.Prefix == "" && it.Content == "" && it.Formula == "" && it.Expected == ""
}

// HasCheck reports whether the row carries a formula to verify.
func (it LineItem) HasCheck() bool { return it.Formula != "" }

// Diagnostic records a recoverable notation problem found while compiling.
type Diagnostic struct {
	// Index is the token position in the stream.
	Index int

	// Token is the token text.
	Token string

	// State names the compiler state when the problem was found.
	State string

	// Err is one of the package sentinels.
	Err error
}

// Error implements error.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("token #%d %q: %v (state %s)", d.Index, d.Token, d.Err, d.State)
}

// Unwrap exposes the sentinel to errors.Is.
func (d Diagnostic) Unwrap() error { return d.Err }

// Layout is the compiled form of a notation string. It is never mutated
// after Compile returns.
type Layout struct {
	// Items are the rows in display order.
	Items []LineItem

	// Base is the working number base.
	Base int

	// Kind is the arithmetic family.
	Kind Kind

	// MaxWidth is the longest Content, in runes; renderers right-align to it.
	MaxWidth int

	// Radix is the distinct symbol table the base was derived from.
	Radix *notation.RadixTable

	// NonZero holds the symbols that lead a row and therefore cannot be 0.
	NonZero map[rune]bool

	// Merges counts operand rows absorbed into another row (a divisor folded
	// into its dividend).
	Merges int

	// Diagnostics lists recoverable problems in token order.
	Diagnostics []Diagnostic
}

// Rows returns the number of non-separator rows.
func (l *Layout) Rows() int {
	n := 0
	for _, it := range l.Items {
		if !it.IsBlank() {
			n++
		}
	}

	return n
}

// HasDiagnostic reports whether any diagnostic matches target.
func (l *Layout) HasDiagnostic(target error) bool {
	for _, d := range l.Diagnostics {
		if errors.Is(d, target) {
			return true
		}
	}

	return false
}

// Candidates returns, for every symbol, the digits it may legally take:
// 0..Base-1, without 0 for symbols that lead a row.
func (l *Layout) Candidates() map[rune][]int {
	if l.Radix == nil {
		return map[rune][]int{}
	}
	out := make(map[rune][]int, l.Radix.Len())
	for _, sym := range l.Radix.Symbols() {
		first := 0
		if l.NonZero[sym] {
			first = 1
		}
		digits := make([]int, 0, l.Base)
		for d := first; d < l.Base; d++ {
			digits = append(digits, d)
		}
		out[sym] = digits
	}

	return out
}
