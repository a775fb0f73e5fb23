package catalog

import "errors"

var (
	// ErrUnsupportedFormat is returned for catalog files that are not JSON, TOML or YAML.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrDuplicateID is returned when two entries share an id.
	ErrDuplicateID = errors.New("duplicate FAQ id")
)
