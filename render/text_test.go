package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryptarithm/layout"
	"github.com/katalvlaran/cryptarithm/notation"
	"github.com/katalvlaran/cryptarithm/render"
	"github.com/katalvlaran/cryptarithm/verify"
)

const multiplication = "ABC*DE=FAE+GDB=EECE."

func compile(t *testing.T, text string) *layout.Layout {
	t.Helper()
	l, err := layout.Compile(text, layout.WithMinimumBase(10))
	require.NoError(t, err)

	return l
}

func mapping(t *testing.T, s string) notation.SymbolMap {
	t.Helper()
	m, err := notation.ParseAssignments(s)
	require.NoError(t, err)

	return m
}

func TestText_SquareRoot(t *testing.T) {
	l := compile(t, "AB'BC gives root DC - E = DBC - DBC = F.")

	want := "" +
		"  D  C\n" +
		" -----\n" +
		"√AB BC\n" +
		"- E\n" +
		"  ----\n" +
		"  D BC\n" +
		"- D BC\n" +
		"     -\n" +
		"     F\n" +
		"\n"
	assert.Equal(t, want, render.Text(l, nil))
}

func TestText_WithVerdicts(t *testing.T) {
	l := compile(t, multiplication)
	results := verify.VerifyLayout(l, mapping(t, "A=1,B=2,C=3,D=4,E=5,F=6,G=9"))

	want := "" +
		"  ABC\n" +
		"*  DE\n" +
		"  ---\n" +
		"  FAE  ✓\n" +
		"+GDB   ✓\n" +
		" ----\n" +
		" EECE  ✓\n" +
		"\n"
	assert.Equal(t, want, render.Text(l, results))
}

func TestText_MismatchAndUnresolved(t *testing.T) {
	l := compile(t, multiplication)

	results := verify.VerifyLayout(l, mapping(t, "A=1,B=2,C=3,D=4,E=5,F=6,G=8"))
	lines := strings.Split(render.Text(l, results), "\n")
	assert.Equal(t, "+GDB   ✗ 492 != 842 (^^.)", lines[4])

	results = verify.VerifyLayout(l, mapping(t, "A=1,B=2,C=3,D=4,E=5,F=6"))
	lines = strings.Split(render.Text(l, results, render.WithFormulas()), "\n")
	assert.Equal(t, " EECE  ? 615+(10*G42)  [FAE+(10*GDB)]", lines[6])
}

func TestText_Options(t *testing.T) {
	l := compile(t, "AB+CD=EF.")
	out := render.Text(l, nil, render.WithRule('='), nil)
	assert.Equal(t, " AB\n+CD\n ==\n EF\n\n", out)
}

// TestText_IgnoresForeignResults drops a verdict slice that does not belong
// to the layout.
func TestText_IgnoresForeignResults(t *testing.T) {
	l := compile(t, "AB+CD=EF.")
	other := verify.VerifyLayout(compile(t, multiplication), nil)
	assert.Equal(t, render.Text(l, nil), render.Text(l, other))
	assert.Equal(t, "", render.Text(nil, nil))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	l := compile(t, "AB+CD=EF.")
	require.NoError(t, render.Write(&buf, l, nil))
	assert.Equal(t, render.Text(l, nil), buf.String())
}
