// SPDX-License-Identifier: MIT

// Package layout compiles cryptarithm notation into positionally aligned
// rows, each annotated with the arithmetic check that must hold once every
// symbol has a digit.
//
// 🚀 What does it do?
//
//	Given "ABBC/CD=EF-ADG=DHC-DHC=I." it reproduces the long division the
//	way it is written on paper:
//
//	       EF
//	  CD)ABBC
//	    -ADG       check: E*CD
//	    ----
//	      DHC      check: 10*(ABB-ADG)+C
//	     -DHC      check: F*CD
//	     ----
//	        I      check: DHC-DHC
//
// ✨ Supported layouts:
//   - long multiplication with partial products (`*`, `+`, `=`)
//   - long division with quotient placement and bring-down (`/`, `-`, `=`)
//   - square and cube root extraction (`AB'CD gives root EF`, `-`, `=`)
//   - chains of additions and subtractions (`+`, `-`, `=`)
//
// ⚙️ Usage:
//
//	l, err := layout.Compile("ABC*DE=FAE+GDB=EECE.", layout.WithMinimumBase(10))
//	if errors.Is(err, layout.ErrUnterminatedOperator) { /* l is partial */ }
//	for _, it := range l.Items { fmt.Println(it.Prefix, it.Content, it.Formula) }
//
// Compilation is one synchronous pass over the tokens. Structural mistakes in
// the notation are collected as Diagnostics instead of aborting, because a
// puzzle being transcribed is routinely invalid for a moment. Only a radix
// overflow is fatal, and an operator left dangling at end of input returns the
// partial layout together with ErrUnterminatedOperator.
package layout
