// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"regexp"
	"strings"
)

// TokenKind classifies a token as a structural operator or an operand group.
type TokenKind int

const (
	// Operator is one of ^ . ; - + * / =.
	Operator TokenKind = iota

	// Operand is a run of symbols, possibly containing apostrophes that mark
	// root digit groups.
	Operand
)

// String implements fmt.Stringer.
func (k TokenKind) String() string {
	switch k {
	case Operator:
		return "operator"
	case Operand:
		return "operand"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Operator runes recognized by the lexer.
const (
	OpRoot     = '^'
	OpEnd      = '.'
	OpGroupEnd = ';'
	OpMinus    = '-'
	OpPlus     = '+'
	OpMult     = '*'
	OpDiv      = '/'
	OpEqual    = '='
)

// RootMark separates root digit groups inside an operand ("AB'CD").
const RootMark = '\''

// Token is one lexical unit of a notation string.
type Token struct {
	// Kind tells operators from operands.
	Kind TokenKind

	// Text is the raw token text. Operators are always one rune long.
	Text string

	// Index is the zero-based position of the token in the stream.
	Index int
}

// Op returns the operator rune, or 0 when the token is an operand.
func (t Token) Op() rune {
	if t.Kind != Operator {
		return 0
	}
	for _, r := range t.Text {
		return r
	}

	return 0
}

// IsOperand reports whether the token is an operand group.
func (t Token) IsOperand() bool { return t.Kind == Operand }

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// aliases folds alternative spellings into the canonical operator set.
// "gives root" is the long-hand way puzzle authors introduce the root value.
var aliases = strings.NewReplacer(
	"gives root", "^",
	"÷", "/", // ÷
	"–", "-", // – en dash
	"’", "'", // ’
)

var whitespaceRun = regexp.MustCompile(`[\r\n\t ]+`)

// Normalize applies the alias substitutions and collapses every run of
// carriage returns, newlines, tabs and spaces into a single space.
func Normalize(input string) string {
	return whitespaceRun.ReplaceAllString(aliases.Replace(input), " ")
}

// isDelimiter reports whether r splits operands. Whitespace delimits but is
// never emitted as a token.
func isDelimiter(r rune) bool {
	switch r {
	case OpRoot, OpEnd, OpGroupEnd, OpMinus, OpPlus, OpMult, OpDiv, OpEqual:
		return true
	case ' ', '\t', '\r', '\n':
		return true
	}

	return false
}

// Tokenize normalizes input and splits it into operators and operands,
// keeping the operators as standalone tokens and dropping whitespace and
// empty fragments. It never fails: malformed input simply yields a token
// stream the layout compiler will diagnose.
//
// Complexity: O(n) time and space in the length of input.
func Tokenize(input string) []Token {
	norm := Normalize(input)
	tokens := make([]Token, 0, len(norm)/2+1)
	var cur strings.Builder

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: Operand, Text: cur.String(), Index: len(tokens)})
		cur.Reset()
	}

	for _, r := range norm {
		if !isDelimiter(r) {
			cur.WriteRune(r)
			continue
		}
		flush()
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			continue
		}
		tokens = append(tokens, Token{Kind: Operator, Text: string(r), Index: len(tokens)})
	}
	flush()

	return tokens
}
