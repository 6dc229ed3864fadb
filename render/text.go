package render

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/cryptarithm/layout"
	"github.com/katalvlaran/cryptarithm/verify"
)

// glyphs maps row prefixes to the character printed in the prefix column.
var glyphs = map[string]string{
	layout.PrefixSquareRoot: "√",
	layout.PrefixCubeRoot:   "∛",
}

// Text renders l one line per row. results, when it has one entry per item
// (as returned by verify.VerifyLayout), adds a verdict column; pass nil for
// the bare layout. Trailing spaces are trimmed from every line.
func Text(l *layout.Layout, results []verify.LineResult, opts ...Option) string {
	if l == nil {
		return ""
	}
	o := gatherOptions(opts...)
	if len(results) != len(l.Items) {
		results = nil
	}

	var sb strings.Builder
	for i, it := range l.Items {
		if it.IsBlank() {
			sb.WriteByte('\n')
			continue
		}
		if it.Overline {
			writeLine(&sb, rule(it.Content, l.MaxWidth, o.rule))
		}

		line := prefix(it.Prefix) + leftPad(it.Content, l.MaxWidth)
		if results != nil && results[i].Status != verify.Unchecked {
			line += strings.Repeat(" ", o.gutter) + verdict(results[i].CheckResult)
			if o.formulas {
				line += "  [" + it.Formula + "]"
			}
		}
		writeLine(&sb, line)
	}

	return sb.String()
}

// Write renders l to w.
func Write(w io.Writer, l *layout.Layout, results []verify.LineResult, opts ...Option) error {
	_, err := io.WriteString(w, Text(l, results, opts...))

	return err
}

func writeLine(sb *strings.Builder, s string) {
	sb.WriteString(strings.TrimRight(s, " "))
	sb.WriteByte('\n')
}

func prefix(p string) string {
	if g, ok := glyphs[p]; ok {
		return g
	}
	if p == "" {
		return " "
	}

	return p
}

// leftPad right-aligns s in a field of width runes.
func leftPad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}

	return s
}

// rule draws r under the columns content occupies once right-aligned,
// skipping its leading blanks.
func rule(content string, width int, r rune) string {
	n := utf8.RuneCountInString(content)
	lead := n - utf8.RuneCountInString(strings.TrimLeft(content, " "))

	return strings.Repeat(" ", 1+max(width-n, 0)+lead) + strings.Repeat(string(r), n-lead)
}

func verdict(r verify.CheckResult) string {
	switch {
	case r.Status == verify.Match:
		return "✓"
	case !r.Resolved:
		return "? " + r.Computed
	default:
		return "✗ " + r.Computed + " != " + r.Expected + " (" + r.Marks() + ")"
	}
}
