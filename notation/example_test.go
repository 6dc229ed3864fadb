package notation_test

import (
	"fmt"

	"github.com/katalvlaran/cryptarithm/notation"
)

// ExampleTokenize shows operator-preserving lexing of a square-root notation.
func ExampleTokenize() {
	for _, tok := range notation.Tokenize("AB'BC gives root DC - E = DBC") {
		fmt.Println(tok)
	}
	// Output:
	// operand "AB'BC"
	// operator "^"
	// operand "DC"
	// operator "-"
	// operand "E"
	// operator "="
	// operand "DBC"
}

// ExampleInferRadix derives the base from the distinct symbols.
func ExampleInferRadix() {
	rt, err := notation.InferRadix(notation.Tokenize("SEND+MORE=MONEY"), 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(rt.Base(), string(rt.Symbols()))
	fmt.Println(rt.InitialMapping())
	// Output:
	// 8 SENDMORY
	// D=3,E=1,M=4,N=2,O=5,R=6,S=0,Y=7
}
