// SPDX-License-Identifier: MIT
package layout_test

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cryptarithm/layout"
)

// TestDefaultOptions_Documented verifies that no options equal the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := layout.GatherOptionsSnapshot()
	assert.Equal(t, layout.DefaultMinimumBase, o.MinBase)
	assert.Equal(t, layout.DefaultCaseFolding, o.CaseFolding)
	assert.False(t, o.HasLogger)
}

// TestOptions_LastWriterWins applies conflicting options in order.
func TestOptions_LastWriterWins(t *testing.T) {
	lg := log.New(io.Discard, "", 0)
	o := layout.GatherOptionsSnapshot(
		layout.WithMinimumBase(10),
		layout.WithMinimumBase(12),
		layout.WithLogger(lg),
		nil,
		layout.WithLogger(nil),
		layout.WithCaseFolding(),
	)
	assert.Equal(t, 12, o.MinBase)
	assert.False(t, o.HasLogger)
	assert.True(t, o.CaseFolding)
}

// TestWithMinimumBase_Panics rejects bases outside [0,36].
func TestWithMinimumBase_Panics(t *testing.T) {
	assert.Panics(t, func() { layout.WithMinimumBase(-1) })
	assert.Panics(t, func() { layout.WithMinimumBase(37) })
	assert.NotPanics(t, func() { layout.WithMinimumBase(0) })
	assert.NotPanics(t, func() { layout.WithMinimumBase(36) })
}
