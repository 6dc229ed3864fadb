package puzzle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int

const (
	TOML Format = iota
	YAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("FormatOf(%q): %w", path, ErrUnknownFormat)
	}
}

// Decode reads one document from r and validates it.
func Decode(r io.Reader, f Format) (*Puzzle, error) {
	var p Puzzle
	switch f {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
			return nil, fmt.Errorf("Decode(%s): %w", f, err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&p); err != nil {
			return nil, fmt.Errorf("Decode(%s): %w", f, err)
		}
	default:
		return nil, fmt.Errorf("Decode(%s): %w", f, ErrUnknownFormat)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Decode(%s): %w", f, err)
	}

	return &p, nil
}

// Encode writes p to w.
func Encode(w io.Writer, p *Puzzle, f Format) error {
	switch f {
	case TOML:
		if err := toml.NewEncoder(w).Encode(p); err != nil {
			return fmt.Errorf("Encode(%s): %w", f, err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("Encode(%s): %w", f, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("Encode(%s): %w", f, err)
		}
	default:
		return fmt.Errorf("Encode(%s): %w", f, ErrUnknownFormat)
	}

	return nil
}

// Load reads the document at path, choosing the format by extension.
func Load(path string) (*Puzzle, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer file.Close()

	return Decode(file, f)
}

// Save writes p to path, choosing the format by extension.
func Save(path string, p *Puzzle) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Save: %w", cerr)
		}
	}()

	return Encode(file, p, f)
}
