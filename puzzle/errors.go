package puzzle

import "errors"

var (
	// ErrUnknownFormat indicates a file extension or Format that is neither
	// TOML nor YAML.
	ErrUnknownFormat = errors.New("puzzle: unknown document format")

	// ErrBadMapping indicates a mapping entry whose key or value is not
	// exactly one symbol, or whose value is not a base-36 digit.
	ErrBadMapping = errors.New("puzzle: bad mapping entry")

	// ErrBadMinimumBase indicates a min_base outside [0,36].
	ErrBadMinimumBase = errors.New("puzzle: min_base out of range")

	// ErrNoNotation indicates a document without a notation.
	ErrNoNotation = errors.New("puzzle: document has no notation")
)
