package verify

import (
	"fmt"

	"github.com/katalvlaran/cryptarithm/expr"
)

const (
	// DefaultFractionDigits is the number of base digits kept after the radix
	// point when a check does not come out integral.
	DefaultFractionDigits = expr.DefaultFractionDigits

	// MaxFractionDigits is the float64 mantissa width; more digits carry no
	// information.
	MaxFractionDigits = 52
)

const panicFractionDigitsInvalid = "verify: WithFractionDigits: n must be in [1,%d], got %d"

// Option customizes verification.
type Option func(*options)

type options struct {
	fracDigits int
}

// WithFractionDigits bounds the digits printed after the radix point.
// Panics if n is outside [1, MaxFractionDigits].
func WithFractionDigits(n int) Option {
	if n < 1 || n > MaxFractionDigits {
		panic(fmt.Sprintf(panicFractionDigitsInvalid, MaxFractionDigits, n))
	}

	return func(o *options) { o.fracDigits = n }
}

func gatherOptions(opts ...Option) options {
	o := options{fracDigits: DefaultFractionDigits}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
