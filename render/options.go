package render

// Defaults.
const (
	// DefaultRule is the rune rules are drawn with.
	DefaultRule = '-'

	// DefaultGutter is the number of spaces between a row and its verdict.
	DefaultGutter = 2
)

// Option customizes Text.
type Option func(*options)

type options struct {
	rule     rune
	gutter   int
	formulas bool
}

// WithRule draws rules with r instead of DefaultRule.
func WithRule(r rune) Option {
	return func(o *options) { o.rule = r }
}

// WithFormulas appends each row's check formula after its verdict.
func WithFormulas() Option {
	return func(o *options) { o.formulas = true }
}

func gatherOptions(opts ...Option) options {
	o := options{rule: DefaultRule, gutter: DefaultGutter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
