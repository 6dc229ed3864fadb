// SPDX-License-Identifier: MIT

package notation

import "fmt"

// RadixTable records every distinct symbol of a puzzle in order of first
// appearance. The position of a symbol is its canonical digit identity and
// the number of symbols is the working base.
//
// A RadixTable is immutable once built by InferRadix.
type RadixTable struct {
	symbols []rune
	index   map[rune]int
	base    int
}

// InferRadix scans every operand token and records each rune that is not a
// RootMark, skipping runes already seen. The base is the number of distinct
// runes, raised to minBase when that is larger, and never below 1.
//
// Errors:
//   - ErrRadixOverflow when the resulting base exceeds MaxBase.
//
// Complexity: O(n) over the total operand length.
func InferRadix(tokens []Token, minBase int) (*RadixTable, error) {
	rt := &RadixTable{index: make(map[rune]int)}
	for _, tok := range tokens {
		if tok.Kind != Operand {
			continue
		}
		for _, r := range tok.Text {
			if r == RootMark {
				continue
			}
			if _, seen := rt.index[r]; seen {
				continue
			}
			rt.index[r] = len(rt.symbols)
			rt.symbols = append(rt.symbols, r)
		}
	}

	rt.base = len(rt.symbols)
	if minBase > rt.base {
		rt.base = minBase
	}
	if rt.base < 1 {
		rt.base = 1
	}
	if rt.base > MaxBase {
		return nil, fmt.Errorf("InferRadix: %d symbols, base %d: %w", len(rt.symbols), rt.base, ErrRadixOverflow)
	}

	return rt, nil
}

// Base returns the working number base.
func (rt *RadixTable) Base() int { return rt.base }

// Len returns the number of distinct symbols.
func (rt *RadixTable) Len() int { return len(rt.symbols) }

// Symbols returns a copy of the symbols in first-appearance order.
func (rt *RadixTable) Symbols() []rune {
	out := make([]rune, len(rt.symbols))
	copy(out, rt.symbols)

	return out
}

// Index returns the canonical index of sym.
func (rt *RadixTable) Index(sym rune) (int, bool) {
	i, ok := rt.index[sym]

	return i, ok
}

// Contains reports whether sym occurs in the puzzle.
func (rt *RadixTable) Contains(sym rune) bool {
	_, ok := rt.index[sym]

	return ok
}

// Digit returns the canonical base-36 digit of sym.
func (rt *RadixTable) Digit(sym rune) (rune, bool) {
	i, ok := rt.index[sym]
	if !ok {
		return 0, false
	}

	return Digit(i), true
}

// InitialMapping assigns every symbol its canonical digit. This is the
// starting point a solving UI shows before the user begins swapping digits.
func (rt *RadixTable) InitialMapping() SymbolMap {
	m := make(SymbolMap, len(rt.symbols))
	for i, sym := range rt.symbols {
		m[sym] = Digit(i)
	}

	return m
}
