package expr

import (
	"fmt"
	"strconv"
)

const eof = 0

// parser walks an ASCII expression one byte at a time. Anything outside the
// grammar is an error, so multi-byte runes never need decoding.
type parser struct {
	s   string
	pos int
}

func (p *parser) skip() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	p.skip()
	if p.pos >= len(p.s) {
		return eof
	}

	return p.s[p.pos]
}

func (p *parser) errorf(err error) error {
	return fmt.Errorf("offset %d in %q: %w", p.pos, p.s, err)
}

// Evaluate parses and evaluates s.
//
// Errors:
//   - ErrEmpty:         nothing but blanks.
//   - ErrUnexpectedChar: a rune outside digits, operators, parentheses.
//   - ErrSyntax:        missing operand, unbalanced parentheses, trailing input.
//   - ErrDivisionByZero: a zero divisor.
//
// Complexity: O(n) time, O(depth) stack.
func Evaluate(s string) (float64, error) {
	p := &parser{s: s}
	if p.peek() == eof {
		return 0, ErrEmpty
	}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if c := p.peek(); c != eof {
		if c == ')' || isOperator(c) {
			return 0, p.errorf(ErrSyntax)
		}

		return 0, p.errorf(ErrUnexpectedChar)
	}

	return v, nil
}

func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return v, nil
		}
		p.pos++
		r, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += r
		} else {
			v -= r
		}
	}
}

func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return v, nil
		}
		p.pos++
		r, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			v *= r
			continue
		}
		if r == 0 {
			return 0, p.errorf(ErrDivisionByZero)
		}
		v /= r
	}
}

func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()

		return -v, err
	case '+':
		p.pos++

		return p.unary()
	}

	return p.primary()
}

func (p *parser) primary() (float64, error) {
	c := p.peek()
	switch {
	case c == eof:
		return 0, p.errorf(ErrSyntax)
	case c == '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, p.errorf(ErrSyntax)
		}
		p.pos++

		return v, nil
	case c >= '0' && c <= '9':
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
			p.pos++
		}
		// digit runs always parse; overflow saturates to ±Inf rather than failing
		v, _ := strconv.ParseFloat(p.s[start:p.pos], 64)

		return v, nil
	case c == ')' || isOperator(c):
		return 0, p.errorf(ErrSyntax)
	}

	return 0, p.errorf(ErrUnexpectedChar)
}
