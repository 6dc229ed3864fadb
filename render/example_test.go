package render_test

import (
	"fmt"

	"github.com/katalvlaran/cryptarithm/layout"
	"github.com/katalvlaran/cryptarithm/notation"
	"github.com/katalvlaran/cryptarithm/render"
	"github.com/katalvlaran/cryptarithm/verify"
)

func ExampleText() {
	l, _ := layout.Compile("ABBC/CD=EF-ADG=DHC-DHC=I.", layout.WithMinimumBase(10))
	m, _ := notation.ParseAssignments("A=1,B=5,C=4,D=2,E=3,F=7,G=6,H=9,I=0")

	fmt.Print(render.Text(l, verify.VerifyLayout(l, m)))
	// Output:
	//       EF
	//  CD)ABBC
	// -   ADG   ✓
	//      ---
	//      DHC  ✓
	// -    DHC  ✓
	//        -
	//        I  ✓
}
