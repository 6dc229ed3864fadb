package puzzle_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/cryptarithm/puzzle"
)

func ExampleDecode() {
	doc := `
notation: "A+B=CD."
min_base: 12
mapping: {A: "7", B: "9"}
`
	p, err := puzzle.Decode(strings.NewReader(doc), puzzle.YAML)
	if err != nil {
		fmt.Println(err)
		return
	}
	m, _ := p.SymbolMap()
	fmt.Println(p.Notation, p.MinBase, m)
	// Output:
	// A+B=CD. 12 A=7,B=9
}

func ExampleEncode() {
	p := &puzzle.Puzzle{Name: "Addition", Notation: "AB+CD=EF.", MinBase: 10}
	_ = puzzle.Encode(os.Stdout, p, puzzle.TOML)
	// Output:
	// name = "Addition"
	// notation = "AB+CD=EF."
	// min_base = 10
}
