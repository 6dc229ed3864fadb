// SPDX-License-Identifier: MIT

package layout

import (
	"strings"

	"github.com/katalvlaran/cryptarithm/notation"
)

// operand turns one value token into a row. Most operands become a new row;
// a radical argument and a quotient are displayed above the row they belong
// to, and a divisor is folded into its dividend.
func (c *compiler) operand(tok notation.Token) {
	if c.state == stateIdle {
		c.diagnose(tok, ErrMissingOperator)
	}

	item := LineItem{
		Prefix:  c.prefix,
		Indent:  c.indent,
		Formula: c.formula,
	}
	c.formula = ""

	content, isRoot := c.scanOperand(tok)
	item.Expected = content
	c.lastVal = content
	if runeLen(content) > 1 {
		for _, r := range content {
			c.nonZero[r] = true
			break
		}
	}

	if isRoot {
		switch c.kind {
		case SquareRoot:
			item.Prefix = PrefixSquareRoot
			c.numWidth = 2
			item.Overline = true
		case CubeRoot:
			item.Prefix = PrefixCubeRoot
			c.numWidth = 3
			item.Overline = true
		default:
			c.diagnose(tok, ErrBadRootGrouping)
		}
	}

	padding := spaces(c.numWidth * item.Indent)
	item.Indent = c.indent * c.numWidth

	emit := -1
	switch c.kind {
	case SquareRoot, CubeRoot:
		emit = c.rootOperand(tok, &item, content, padding)
	case Division:
		emit = c.divisionOperand(tok, &item, content, padding)
	case Multiplication:
		if c.state == stateWantMult {
			c.multiplier = content
		}
		item.Content = content + padding
		c.state = stateMultAdds
	default:
		item.Content = content + padding
		c.state = stateIdle
	}

	if emit < 0 {
		emit = c.rows.add(item)
	}
	if row := c.rows.at(emit); row.Prefix == string(notation.OpEqual) {
		row.Prefix = ""
		row.Overline = true
	}
	c.rows.place(emit)
	c.prefix = ""
	c.expected = ""
}

// scanOperand strips root marks from the token, resolving the root kind from
// the size of the digit groups they separate.
func (c *compiler) scanOperand(tok notation.Token) (string, bool) {
	var sb strings.Builder
	isRoot := false
	rootLen := 0
	for _, r := range tok.Text {
		if r != notation.RootMark {
			sb.WriteRune(r)
			rootLen++
			continue
		}
		if c.prefix != "" {
			c.diagnose(tok, ErrMisplacedRootMark)
		}
		isRoot = true
		c.indent++
		if c.kind == Automatic {
			switch rootLen {
			case 2:
				c.kind = SquareRoot
			case 3:
				c.kind = CubeRoot
			}
		}
		rootLen = 0
	}

	if isRoot {
		switch {
		case rootLen == 3:
			c.kind = CubeRoot
		case rootLen == 2 && c.kind == Automatic:
			c.kind = SquareRoot
		}
	}

	return sb.String(), isRoot
}

// rootOperand lays out a row of a square or cube root. It returns the arena
// index to emit, or -1 when item itself should be added.
func (c *compiler) rootOperand(tok notation.Token, item *LineItem, content, padding string) int {
	defer func() { c.state = stateIdle }()

	if item.Prefix == string(notation.OpRoot) {
		item.Prefix = ""
		item.Content = strings.Join(strings.Split(content, ""), spaces(c.numWidth))
		c.root = content

		idx := c.rows.add(*item)
		prev, ok := c.rows.swapLast(idx)
		if !ok {
			c.diagnose(tok, ErrMissingOperand)
			return idx
		}
		radicand := c.rows.at(prev)
		c.rootBase = strings.ReplaceAll(radicand.Content, " ", "")
		head := runeLen(c.rootBase) % c.numWidth
		if head == 0 {
			head = c.numWidth
		}
		c.lastVal = substr(c.rootBase, 0, head)

		return prev
	}

	// A row that does not end with the group just brought down means the
	// root digit for that step was zero and a second group came down with it.
	if c.indent > 0 && c.expected != "" && item.Formula != "" &&
		substr(content, runeLen(content)-c.numWidth, c.numWidth) != c.expected {
		padding = spaces(runeLen(padding) - c.numWidth)
		group := substr(c.rootBase, runeLen(c.rootBase)-c.indent*c.numWidth, c.numWidth)
		item.Formula = "(" + item.Formula + ")*" + c.rootScale() + "+" + group
		c.indent--
	}
	item.Content = groupFromRight(spaces(c.numWidth-1)+content+padding, c.numWidth)

	return -1
}

// divisionOperand lays out a row of a long division. It returns the arena
// index to emit, or -1 when item itself should be added.
func (c *compiler) divisionOperand(tok notation.Token, item *LineItem, content, padding string) int {
	if item.Prefix == string(notation.OpDiv) {
		c.divisor = content
		c.state = stateWantQuotient
		prev, ok := c.rows.popLast()
		if !ok {
			c.diagnose(tok, ErrMissingOperand)
			c.dividend = ""
			item.Content = content
			return -1
		}
		row := c.rows.at(prev)
		c.dividend = row.Content
		row.Content = content + ")" + row.Content
		c.merges++

		return prev
	}

	// Same zero-digit widening as roots, one dividend digit at a time.
	if c.indent > 0 && c.expected != "" && item.Formula != "" &&
		substr(content, runeLen(content)-1, 1) != c.expected {
		padding = spaces(runeLen(padding) - 1)
		item.Formula = "(" + item.Formula + ")*10+" + substr(c.dividend, runeLen(c.dividend)-c.indent, 1)
		c.indent--
	}
	item.Content = content + padding

	if c.state != stateWantQuotient {
		c.state = stateIdle
		return -1
	}

	c.quotient = content
	item.Prefix = ""
	idx := c.rows.add(*item)
	prev, ok := c.rows.swapLast(idx)
	c.indent = runeLen(content) - 1
	c.lastVal = substr(c.dividend, 0, runeLen(c.dividend)-c.indent)
	c.state = stateIdle
	if !ok {
		c.diagnose(tok, ErrMissingOperand)
		return idx
	}

	return prev
}

// groupFromRight splits s into width-sized groups counted from its right
// edge and joins them with single spaces. A short leftover group on the left
// is dropped; callers pad with width-1 spaces so it never holds a symbol.
func groupFromRight(s string, width int) string {
	r := []rune(s)
	n := len(r) / width
	if n == 0 {
		return ""
	}
	groups := make([]string, n)
	for i := 0; i < n; i++ {
		end := len(r) - i*width
		groups[n-1-i] = string(r[end-width : end])
	}

	return strings.Join(groups, " ")
}
