// SPDX-License-Identifier: MIT
// Package layout: sentinel error set.
//
// Every message is prefixed with "layout: ". Diagnostics wrap these
// sentinels; match with errors.Is, never by string.
//
// Severity:
//   - fatal:       notation.ErrRadixOverflow (surfaced from InferRadix), ErrNilRadix.
//   - partial:     ErrUnterminatedOperator (returned with the partial Layout).
//   - recoverable: all others, collected in Layout.Diagnostics.

package layout

import "errors"

var (
	// ErrUnexpectedOperator indicates an operator arrived while another
	// operator was still waiting for its operand. The newer operator wins.
	ErrUnexpectedOperator = errors.New("layout: operator while another is pending")

	// ErrUnterminatedOperator indicates the input ended while an operator was
	// still waiting for its operand.
	ErrUnterminatedOperator = errors.New("layout: input ends inside an operator")

	// ErrMissingOperator indicates two operands in a row with nothing joining them.
	ErrMissingOperator = errors.New("layout: operand without operator")

	// ErrMisplacedRootMark indicates a root group mark (') on an operand that
	// follows an operator; only the radicand may carry them.
	ErrMisplacedRootMark = errors.New("layout: root mark outside the radicand")

	// ErrBadRootGrouping indicates root marks whose group sizes decide neither
	// a square (2) nor a cube (3) root.
	ErrBadRootGrouping = errors.New("layout: root marks group neither 2 nor 3 symbols")

	// ErrNilRadix indicates CompileTokens was given no radix table.
	ErrNilRadix = errors.New("layout: nil radix table")

	// ErrMissingOperand indicates a root value, divisor or quotient with no
	// preceding row to attach to.
	ErrMissingOperand = errors.New("layout: no preceding row to attach to")
)
