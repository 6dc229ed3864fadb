package expr

import "errors"

var (
	// ErrEmpty is returned for an empty or all-blank expression.
	ErrEmpty = errors.New("expr: empty expression")

	// ErrSyntax covers structural problems: a missing operand, an unbalanced
	// parenthesis or trailing input.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnexpectedChar is returned for any rune outside the grammar, most
	// commonly an unassigned puzzle symbol left in a substituted formula.
	ErrUnexpectedChar = errors.New("expr: unexpected character")

	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrNotFinite is returned by FormatBased for NaN or ±Inf.
	ErrNotFinite = errors.New("expr: value is not finite")

	// ErrBadBase is returned by FormatBased for a base outside 2..36.
	ErrBadBase = errors.New("expr: base must be in [2,36]")
)
