package puzzle

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/katalvlaran/cryptarithm/layout"
	"github.com/katalvlaran/cryptarithm/notation"
)

// Puzzle is one stored cryptarithm.
type Puzzle struct {
	Name     string            `toml:"name,omitempty" yaml:"name,omitempty"`
	Notation string            `toml:"notation" yaml:"notation"`
	MinBase  int               `toml:"min_base,omitempty" yaml:"min_base,omitempty"`
	Mapping  map[string]string `toml:"mapping,omitempty" yaml:"mapping,omitempty"`
}

// Validate checks the fields a compile depends on.
func (p *Puzzle) Validate() error {
	if p.Notation == "" {
		return ErrNoNotation
	}
	if p.MinBase < 0 || p.MinBase > notation.MaxBase {
		return fmt.Errorf("Validate: min_base %d: %w", p.MinBase, ErrBadMinimumBase)
	}
	_, err := p.SymbolMap()

	return err
}

// SymbolMap converts Mapping into a SymbolMap. Keys are sorted first so the
// reported error is deterministic.
func (p *Puzzle) SymbolMap() (notation.SymbolMap, error) {
	keys := make([]string, 0, len(p.Mapping))
	for k := range p.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := make(notation.SymbolMap, len(keys))
	for _, k := range keys {
		v := p.Mapping[k]
		if utf8.RuneCountInString(k) != 1 || utf8.RuneCountInString(v) != 1 {
			return nil, fmt.Errorf("SymbolMap: %q=%q: %w", k, v, ErrBadMapping)
		}
		d, err := notation.ParseDigit([]rune(v)[0])
		if err != nil {
			return nil, fmt.Errorf("SymbolMap: %q=%q: %w: %w", k, v, ErrBadMapping, err)
		}
		m[[]rune(k)[0]] = d
	}

	return m, nil
}

// SetSymbolMap replaces Mapping with the assigned entries of m.
func (p *Puzzle) SetSymbolMap(m notation.SymbolMap) {
	p.Mapping = make(map[string]string, len(m))
	for sym := range m {
		if d, ok := m.Lookup(sym); ok {
			p.Mapping[string(sym)] = string(d)
		}
	}
}

// Compile compiles the notation with the document's minimum base.
func (p *Puzzle) Compile(opts ...layout.Option) (*layout.Layout, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	opts = append([]layout.Option{layout.WithMinimumBase(p.MinBase)}, opts...)

	return layout.Compile(p.Notation, opts...)
}
