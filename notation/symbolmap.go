// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// SymbolMap is a caller-owned assignment of puzzle symbols to digit
// characters. A symbol that is absent, mapped to 0, or mapped to ' ' is
// unassigned. The engine only reads SymbolMaps; the helpers below exist for
// the caller that edits one.
type SymbolMap map[rune]rune

// Lookup returns the digit assigned to sym, if any.
func (m SymbolMap) Lookup(sym rune) (rune, bool) {
	d, ok := m[sym]
	if !ok || d == 0 || d == ' ' {
		return 0, false
	}

	return d, true
}

// Assign maps sym to digit. When another symbol already holds digit, that
// symbol receives the digit sym held before (or becomes unassigned), so a
// digit is never claimed twice.
func (m SymbolMap) Assign(sym, digit rune) {
	old, hadOld := m.Lookup(sym)
	if hadOld && old == digit {
		return
	}
	for other, d := range m {
		if other == sym || d != digit {
			continue
		}
		if hadOld {
			m[other] = old
		} else {
			delete(m, other)
		}

		break
	}
	m[sym] = digit
}

// Clear unassigns sym.
func (m SymbolMap) Clear(sym rune) { delete(m, sym) }

// Clone returns an independent copy, suitable as a per-goroutine snapshot.
func (m SymbolMap) Clone() SymbolMap {
	out := make(SymbolMap, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// String renders the assignments sorted by symbol, e.g. "A=1,B=2".
func (m SymbolMap) String() string {
	keys := make([]rune, 0, len(m))
	for k := range m {
		if _, ok := m.Lookup(k); ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k) + "=" + string(m[k])
	}

	return strings.Join(parts, ",")
}

// ParseAssignments parses a comma separated list of SYM=DIGIT pairs, the
// format used on the command line ("A=1, B=2,C=a"). Blank entries are
// ignored; digits are validated against the base-36 alphabet.
func ParseAssignments(s string) (SymbolMap, error) {
	m := make(SymbolMap)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sym, digit, ok := strings.Cut(part, "=")
		sym, digit = strings.TrimSpace(sym), strings.TrimSpace(digit)
		if !ok || utf8.RuneCountInString(sym) != 1 || utf8.RuneCountInString(digit) != 1 {
			return nil, fmt.Errorf("ParseAssignments(%q): %w", part, ErrBadAssignment)
		}
		d, err := ParseDigit([]rune(digit)[0])
		if err != nil {
			return nil, fmt.Errorf("ParseAssignments(%q): %w", part, err)
		}
		m[[]rune(sym)[0]] = d
	}

	return m, nil
}
