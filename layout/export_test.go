// SPDX-License-Identifier: MIT

package layout

// Test bridge: exposes the rune helpers and option snapshot to layout_test.

var (
	Substr         = substr
	GroupFromRight = groupFromRight
)

// OptionsSnapshot is a read-only view of the resolved options.
type OptionsSnapshot struct {
	MinBase     int
	HasLogger   bool
	CaseFolding bool
}

// GatherOptionsSnapshot resolves opts the way Compile does.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{MinBase: o.minBase, HasLogger: o.logger != nil, CaseFolding: o.caseFolding}
}
