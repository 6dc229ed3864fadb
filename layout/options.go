// SPDX-License-Identifier: MIT

// Package layout: functional configuration for Compile.
//
// Contract:
//   - Options are functional (type Option func(*options)).
//   - Option constructors validate and PANIC on meaningless inputs; Compile
//     itself never panics on notation text.
//   - No hidden globals; everything flows through options.
package layout

import (
	"fmt"
	"log"

	"github.com/katalvlaran/cryptarithm/notation"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultMinimumBase leaves the base equal to the distinct symbol count.
	DefaultMinimumBase = 0

	// DefaultCaseFolding keeps symbols exactly as written.
	DefaultCaseFolding = false
)

const panicMinimumBaseInvalid = "layout: WithMinimumBase: base must be in [0,36], got %d"

// Option customizes a Compile call.
type Option func(*options)

type options struct {
	minBase     int
	logger      *log.Logger
	caseFolding bool
}

// WithMinimumBase raises the working base to at least b. Puzzles written in
// decimal that happen to use fewer than ten symbols need WithMinimumBase(10)
// for their checks to evaluate in base 10.
// Panics if b is outside [0, 36].
func WithMinimumBase(b int) Option {
	if b < 0 || b > notation.MaxBase {
		panic(fmt.Sprintf(panicMinimumBaseInvalid, b))
	}

	return func(o *options) { o.minBase = b }
}

// WithLogger logs every diagnostic through l as it is found. A nil logger
// silences logging again.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCaseFolding upper-cases operand symbols after tokenizing, so "abc" and
// "ABC" name the same symbols while aliases such as "gives root" still apply.
func WithCaseFolding() Option {
	return func(o *options) { o.caseFolding = true }
}

// gatherOptions resolves opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		minBase:     DefaultMinimumBase,
		caseFolding: DefaultCaseFolding,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
