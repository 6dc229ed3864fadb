// SPDX-License-Identifier: MIT

// Package notation turns cryptarithm notation text into tokens and derives
// the working number base from the symbols the puzzle uses.
//
// 🚀 What is cryptarithm notation?
//
//	A compact, hand-written description of a pencil-and-paper computation in
//	which every digit has been replaced by a symbol:
//	  • ABC*DE=FAE+GDB=EECE.          long multiplication
//	  • ABBC/CD=EF-ADG=DHC-DHC=I.     long division
//	  • AB'BC gives root DC-E=DBC...  square root extraction
//
// ✨ What lives here:
//   - Tokenize / Normalize: delimiter-preserving lexer over `; = + - * / . ^`
//     and whitespace, with the "gives root", ÷, en-dash and ’ aliases folded.
//   - InferRadix: the distinct-symbol table; its size is the puzzle base.
//   - Digit / DigitValue: the base-36 digit alphabet `0-9a-z`.
//   - SymbolMap: the caller-owned symbol → digit assignment.
//
// ⚙️ Usage:
//
//	toks := notation.Tokenize("AB+CD=EF.")
//	rt, err := notation.InferRadix(toks, 0)
//	if err != nil { /* ErrRadixOverflow */ }
//	fmt.Println(rt.Base()) // 6
//
// All functions are pure; RadixTable is immutable after construction and may
// be shared between goroutines.
package notation
