// SPDX-License-Identifier: MIT
// Package notation: sentinel error set.
//
// Every message is prefixed with "notation: ". Callers match with errors.Is;
// context is attached by wrapping with %w at the call site.

package notation

import "errors"

var (
	// ErrRadixOverflow is returned when a puzzle uses more distinct symbols
	// than the base-36 digit alphabet can represent. Fatal for a compile.
	ErrRadixOverflow = errors.New("notation: more than 36 distinct symbols")

	// ErrBadAssignment indicates a malformed "SYM=DIGIT" assignment list.
	ErrBadAssignment = errors.New("notation: malformed symbol assignment")

	// ErrDigitOutOfRange indicates a digit value outside 0..35.
	ErrDigitOutOfRange = errors.New("notation: digit out of base-36 range")
)
