// Package render draws a compiled layout as plain text, right-aligned the way
// the computation is written by hand, with an optional verdict column.
//
//	  ABC
//	*  DE
//	  ---
//	  FAE  ✓
//	+GDB   ✓
//	 ----
//	 EECE  ✗ 5525 != 5535 (..^.)
//
// Radicands are prefixed with √ or ∛ and carry their radical bar as the rule
// above them.
package render
