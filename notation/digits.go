// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"unicode"
)

// MaxBase is the largest supported base: one digit per character of 0-9a-z.
const MaxBase = 36

// Digit returns the base-36 digit character for v, e.g. 0→'0', 10→'a', 35→'z'.
// Complexity: O(1).
// Panics if v is outside [0, MaxBase).
func Digit(v int) rune {
	if v < 0 || v >= MaxBase {
		panic(fmt.Sprintf("notation: Digit: value must be in [0,35], got %d", v))
	}
	if v < 10 {
		return rune('0' + v)
	}

	return rune('a' + v - 10)
}

// DigitValue returns the numeric value of a base-36 digit character.
// Letters are accepted in either case. The boolean is false for runes that
// are not digits in any base up to 36.
func DigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	}

	return 0, false
}

// IsDigit reports whether r is a valid digit in the given base.
func IsDigit(r rune, base int) bool {
	v, ok := DigitValue(r)

	return ok && v < base
}

// ParseDigit validates a user supplied digit character, returning its
// canonical lower-case form.
func ParseDigit(r rune) (rune, error) {
	if _, ok := DigitValue(r); !ok {
		return 0, fmt.Errorf("ParseDigit(%q): %w", r, ErrDigitOutOfRange)
	}

	return unicode.ToLower(r), nil
}
