// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/cryptarithm/notation"
)

// state is the compiler's position in the operator/operand alternation.
type state int

const (
	stateInitial state = iota
	stateWantRoot
	stateWantEqual
	stateWantMinus
	stateWantMult
	stateWantDiv
	stateWantPlus
	stateWantQuotient
	stateMultAdds // a multiplication row is complete; more partial products may follow
	stateIdle
)

func (s state) String() string {
	switch s {
	case stateInitial:
		return "Initial"
	case stateWantRoot:
		return "Want Root value"
	case stateWantEqual:
		return "Want = value"
	case stateWantMinus:
		return "Want - value"
	case stateWantMult:
		return "Want * value"
	case stateWantDiv:
		return "Want / value"
	case stateWantPlus:
		return "Want + value"
	case stateWantQuotient:
		return "Want Quotient"
	case stateMultAdds:
		return "Want * Additions"
	case stateIdle:
		return "Idle"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// pending reports whether an operator is still waiting for its operand.
func (s state) pending() bool {
	switch s {
	case stateWantRoot, stateWantEqual, stateWantMinus, stateWantMult,
		stateWantDiv, stateWantPlus, stateWantQuotient:
		return true
	default:
		return false
	}
}

// compiler carries every counter the row construction threads from one token
// to the next.
type compiler struct {
	opts options

	kind     Kind
	state    state
	prefix   string
	indent   int
	numWidth int

	formula  string
	expected string // bring-down digits the next row should end with
	lastVal  string
	lastBase string

	dividend string
	divisor  string
	quotient string

	root     string
	rootBase string

	multiplicand string
	multiplier   string
	multVal      string

	rows    arena
	nonZero map[rune]bool
	merges  int
	diags   []Diagnostic
}

// Compile tokenizes notation, infers its radix and compiles the layout.
//
// Errors:
//   - notation.ErrRadixOverflow: fatal; the Layout is nil.
//   - ErrUnterminatedOperator:  the Layout holds every row completed so far.
//
// Recoverable problems are reported in Layout.Diagnostics.
func Compile(text string, opts ...Option) (*Layout, error) {
	o := gatherOptions(opts...)
	tokens := notation.Tokenize(text)
	if o.caseFolding {
		for i := range tokens {
			if tokens[i].IsOperand() {
				tokens[i].Text = strings.ToUpper(tokens[i].Text)
			}
		}
	}
	radix, err := notation.InferRadix(tokens, o.minBase)
	if err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}

	return compileTokens(tokens, radix, o)
}

// CompileTokens compiles an already tokenized notation against radix.
// WithMinimumBase and WithCaseFolding have no effect here: the radix is final.
// A nil radix returns ErrNilRadix.
func CompileTokens(tokens []notation.Token, radix *notation.RadixTable, opts ...Option) (*Layout, error) {
	if radix == nil {
		return nil, fmt.Errorf("CompileTokens: %w", ErrNilRadix)
	}

	return compileTokens(tokens, radix, gatherOptions(opts...))
}

func compileTokens(tokens []notation.Token, radix *notation.RadixTable, o options) (*Layout, error) {
	c := &compiler{
		opts:     o,
		kind:     Automatic,
		state:    stateInitial,
		numWidth: 1,
		nonZero:  make(map[rune]bool),
	}
	for _, tok := range tokens {
		if tok.IsOperand() {
			c.operand(tok)
		} else {
			c.operator(tok)
		}
	}

	l := &Layout{
		Items:       c.rows.lineItems(),
		Base:        radix.Base(),
		Kind:        c.kind,
		Radix:       radix,
		NonZero:     c.nonZero,
		Merges:      c.merges,
		Diagnostics: c.diags,
	}
	for _, it := range l.Items {
		if w := utf8.RuneCountInString(it.Content); w > l.MaxWidth {
			l.MaxWidth = w
		}
	}

	if c.state.pending() {
		return l, fmt.Errorf("Compile: %s after %q: %w", c.state, c.prefix, ErrUnterminatedOperator)
	}

	return l, nil
}

// diagnose records a recoverable problem and logs it when a logger is set.
func (c *compiler) diagnose(tok notation.Token, err error) {
	d := Diagnostic{Index: tok.Index, Token: tok.Text, State: c.state.String(), Err: err}
	c.diags = append(c.diags, d)
	if c.opts.logger != nil {
		c.opts.logger.Printf("layout: %v", d)
	}
}

// operator applies one structural token. An operator arriving while another
// still waits for its operand is diagnosed and then overrides it.
func (c *compiler) operator(tok notation.Token) {
	op := tok.Op()
	if c.state.pending() && !(op == notation.OpEqual && c.state == stateWantQuotient) {
		c.diagnose(tok, ErrUnexpectedOperator)
	}

	switch op {
	case notation.OpRoot:
		if c.kind == Automatic {
			c.kind = SquareRoot
		}
		c.prefix = tok.Text
		c.state = stateWantRoot

	case notation.OpEnd:
		c.rows.place(c.rows.add(LineItem{}))
		c.prefix = ""
		c.lastBase = ""
		c.multVal = ""
		c.state = stateInitial

	case notation.OpGroupEnd:
		c.prefix = ""
		c.state = stateIdle

	case notation.OpMinus:
		c.minus()
		c.prefix = tok.Text
		c.state = stateWantMinus

	case notation.OpMult:
		c.prefix = tok.Text
		c.state = stateWantMult
		c.multiplicand = c.lastVal
		if c.kind == Automatic {
			c.kind = Multiplication
		}

	case notation.OpPlus:
		c.prefix = tok.Text
		c.state = stateWantPlus
		c.plus()

	case notation.OpDiv:
		c.kind = Division
		c.prefix = tok.Text
		c.state = stateWantDiv

	case notation.OpEqual:
		c.prefix = tok.Text
		inQuotient := c.state == stateWantQuotient
		if !inQuotient {
			c.state = stateWantEqual
		}
		c.equal(inQuotient)
	}
}

// minus prepares the check for the row about to be subtracted.
func (c *compiler) minus() {
	switch c.kind {
	case Automatic, Addition, Subtraction:
		if c.kind == Automatic {
			c.kind = Subtraction
		}
		c.lastBase += c.lastVal + "-"

	case Division:
		// the quotient digit whose multiple is about to be subtracted
		q := substr(c.quotient, runeLen(c.quotient)-(c.indent+1), 1)
		if q != "" {
			c.formula = q + "*" + c.divisor
		}
		c.lastBase = c.lastVal

	case SquareRoot:
		part := substr(c.root, 0, runeLen(c.root)-c.indent)
		lead, d := splitLast(part)
		switch {
		case d == "":
		case lead != "":
			c.formula = "((" + lead + "*20)+" + d + ")*" + d
		default:
			c.formula = d + "*" + d
		}
		c.lastBase = c.lastVal

	case CubeRoot:
		part := substr(c.root, 0, runeLen(c.root)-c.indent)
		found, n := splitLast(part)
		switch {
		case n == "":
		case found != "":
			c.formula = "((300*" + found + "*" + found + ")+(30*" + found + "*" + n + ")+(" + n + "*" + n + "))*" + n
		default:
			c.formula = n + "*" + n + "*" + n
		}
		c.lastBase = c.lastVal

	case Multiplication, Equations:
	}
}

// plus opens the next addend or the next partial product.
func (c *compiler) plus() {
	if c.kind == Automatic {
		c.kind = Addition
	}

	switch c.kind {
	case Addition, Subtraction:
		if c.kind == Addition && c.indent > 0 {
			c.indent--
		}
		c.lastBase += c.lastVal + "+"

	case Multiplication:
		if c.lastBase == "" {
			c.multVal = "10"
			c.lastBase = c.lastVal
		} else {
			c.lastBase += "+(" + c.multVal + "*" + c.lastVal + ")"
			c.multVal += "0"
		}
		c.indent++
		c.formula = ""
		if d := substr(c.multiplier, runeLen(c.multiplier)-c.indent-1, 1); d != "" {
			c.formula = c.multiplicand + "*" + d
		}

	case Automatic, SquareRoot, CubeRoot, Division, Equations:
	}
}

// equal closes the row just completed and prepares the check for the result
// row that follows.
func (c *compiler) equal(inQuotient bool) {
	switch c.kind {
	case Division:
		if inQuotient {
			return
		}
		c.formula = c.lastBase + "-" + c.lastVal
		if c.indent > 0 {
			c.expected = substr(c.dividend, runeLen(c.dividend)-c.indent, 1)
			if c.expected != "" {
				c.formula = "10*(" + c.formula + ")+" + c.expected
			}
			c.indent--
		}

	case SquareRoot, CubeRoot:
		c.formula = c.lastBase + "-" + c.lastVal
		if c.indent > 0 {
			c.expected = substr(c.rootBase, runeLen(c.rootBase)-c.indent*c.numWidth, c.numWidth)
			if c.expected != "" {
				c.formula = "(" + c.formula + ")*" + c.rootScale() + "+" + c.expected
			}
			c.indent--
		}

	case Multiplication:
		if c.indent == 0 {
			c.formula = ""
			if d := substr(c.multiplier, runeLen(c.multiplier)-1, 1); d != "" {
				c.formula = c.multiplicand + "*" + d
			}
			c.lastBase = ""
		} else {
			c.formula = c.lastBase + "+(" + c.multVal + "*" + c.lastVal + ")"
		}
		c.indent = 0

	case Addition, Subtraction:
		c.formula = c.lastBase + c.lastVal
		c.lastBase = ""

	case Automatic, Equations:
	}
}

// rootScale is the base power one root group shifts a remainder by, written
// in the puzzle base: "100" for square roots, "1000" for cube roots.
func (c *compiler) rootScale() string {
	return "1" + strings.Repeat("0", c.numWidth)
}

// substr returns up to n runes of s starting at start. Out-of-range requests
// are clipped instead of wrapping around, so a position before the start of
// the string yields "" rather than a digit from the far end.
func substr(s string, start, n int) string {
	r := []rune(s)
	if start < 0 {
		n += start
		start = 0
	}
	if n <= 0 || start >= len(r) {
		return ""
	}
	end := start + n
	if end > len(r) {
		end = len(r)
	}

	return string(r[start:end])
}

// splitLast splits s into everything but its last rune, and that rune.
func splitLast(s string) (string, string) {
	r := []rune(s)
	if len(r) == 0 {
		return "", ""
	}

	return string(r[:len(r)-1]), string(r[len(r)-1])
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func spaces(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}
