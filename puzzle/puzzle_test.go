package puzzle_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryptarithm/layout"
	"github.com/katalvlaran/cryptarithm/notation"
	"github.com/katalvlaran/cryptarithm/puzzle"
	"github.com/katalvlaran/cryptarithm/verify"
)

const divisionTOML = `
name     = "Long division"
notation = "ABBC/CD=EF-ADG=DHC-DHC=I."
min_base = 10

[mapping]
A = "1"
B = "5"
C = "4"
D = "2"
E = "3"
F = "7"
G = "6"
H = "9"
I = "0"
`

const squareRootYAML = `
name: Square root
notation: AB'BC gives root DC - E = DBC - DBC = F.
min_base: 10
mapping:
  A: "1"
  B: "2"
  C: "5"
  D: "3"
  E: "9"
  F: "0"
`

func TestDecode_SolvesStoredPuzzles(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format puzzle.Format
		kind   layout.Kind
	}{
		{"toml", divisionTOML, puzzle.TOML, layout.Division},
		{"yaml", squareRootYAML, puzzle.YAML, layout.SquareRoot},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := puzzle.Decode(strings.NewReader(tc.doc), tc.format)
			require.NoError(t, err)
			assert.Equal(t, 10, p.MinBase)

			l, err := p.Compile()
			require.NoError(t, err)
			assert.Equal(t, tc.kind, l.Kind)
			assert.Equal(t, 10, l.Base)

			m, err := p.SymbolMap()
			require.NoError(t, err)
			assert.True(t, verify.Summarize(verify.VerifyLayout(l, m)).Solved())
		})
	}
}

// TestSaveLoad stores a puzzle in each format and reads it back from disk.
func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	want := &puzzle.Puzzle{
		Name:     "Multiplication",
		Notation: "ABC*DE=FAE+GDB=EECE.",
		MinBase:  10,
	}
	want.SetSymbolMap(notation.SymbolMap{'A': '1', 'B': '2', 'G': ' '})
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, want.Mapping, "unassigned symbols are not stored")

	for _, name := range []string{"p.toml", "p.yaml", "p.YML"} {
		path := filepath.Join(dir, name)
		require.NoError(t, puzzle.Save(path, want))
		got, err := puzzle.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestFormatOf(t *testing.T) {
	f, err := puzzle.FormatOf("a/b/puzzle.TOML")
	require.NoError(t, err)
	assert.Equal(t, puzzle.TOML, f)

	_, err = puzzle.FormatOf("puzzle.json")
	require.ErrorIs(t, err, puzzle.ErrUnknownFormat)

	_, err = puzzle.Load("puzzle.json")
	require.ErrorIs(t, err, puzzle.ErrUnknownFormat)
	require.ErrorIs(t, puzzle.Save(filepath.Join(t.TempDir(), "p.ini"), &puzzle.Puzzle{}), puzzle.ErrUnknownFormat)

	_, err = puzzle.Decode(strings.NewReader(""), puzzle.Format(7))
	require.ErrorIs(t, err, puzzle.ErrUnknownFormat)
	require.ErrorIs(t, puzzle.Encode(&bytes.Buffer{}, &puzzle.Puzzle{}, puzzle.Format(7)), puzzle.ErrUnknownFormat)
	assert.Equal(t, "Format(7)", puzzle.Format(7).String())
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no notation", `min_base = 10`, puzzle.ErrNoNotation},
		{"base too large", "notation = \"A+B=C\"\nmin_base = 40", puzzle.ErrBadMinimumBase},
		{"long key", "notation = \"A+B=C\"\n[mapping]\nAB = \"1\"", puzzle.ErrBadMapping},
		{"long value", "notation = \"A+B=C\"\n[mapping]\nA = \"12\"", puzzle.ErrBadMapping},
		{"not a digit", "notation = \"A+B=C\"\n[mapping]\nA = \"!\"", notation.ErrDigitOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzle.Decode(strings.NewReader(tc.doc), puzzle.TOML)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := puzzle.Decode(strings.NewReader("notation = "), puzzle.TOML)
	require.Error(t, err)
	_, err = puzzle.Decode(strings.NewReader("notation: [unclosed"), puzzle.YAML)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := puzzle.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompile_InvalidPuzzle(t *testing.T) {
	p := &puzzle.Puzzle{Notation: "A+B=C", MinBase: -1}
	_, err := p.Compile()
	require.ErrorIs(t, err, puzzle.ErrBadMinimumBase)
}
