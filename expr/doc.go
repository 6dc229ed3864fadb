// Package expr evaluates the arithmetic strings produced by formula
// substitution and formats results back into the puzzle base.
//
// The grammar is deliberately tiny: decimal integers, + - * /, parentheses
// and unary signs. Identifiers, assignment, calls and every other construct
// are rejected, so end-user puzzle text can never reach a general purpose
// evaluator.
//
//	expr    = term { ("+" | "-") term } .
//	term    = unary { ("*" | "/") unary } .
//	unary   = ("+" | "-") unary | primary .
//	primary = integer | "(" expr ")" .
//
// Evaluation is carried out in float64; "/" is true division as in pencil
// arithmetic checks. Compute wraps Evaluate and FormatBased and never fails:
// on any error it hands back its input unchanged with ok false, which
// callers display as "not yet resolvable".
package expr
