package configuration

import (
	"errors"
	"fmt"
	"strings"
)

// Load-time errors. All of them are fatal: construction aborts and no
// partial Configuration is returned. Callers are expected to report them
// and exit, not retry.
var (
	// ErrSourceConflict indicates both a file path and an inline document
	// were supplied.
	ErrSourceConflict = errors.New("initialize with either a config path or an inline config document, not both")

	// ErrFileNotFound indicates the resolved config file does not exist
	// or could not be read.
	ErrFileNotFound = errors.New("config file not found")

	// ErrParseInvalid indicates the document is not valid YAML or is not
	// a mapping at the top level.
	ErrParseInvalid = errors.New("config is invalid")

	// ErrExampleConfig indicates the document carries a truthy
	// "example_config" key, guarding against applying a template.
	ErrExampleConfig = errors.New("example config detected: remove the 'example_config' key after creating your own config")

	// ErrUnsupportedVersion indicates the document does not declare
	// "config_version: 2". A missing version defaults to 1 and is
	// rejected the same way.
	ErrUnsupportedVersion = errors.New("the config requires a 'config_version: 2' entry")
)

// AlmostDuplicatesError reports keys of a protected section that differ
// only in letter case. Such entries are ambiguous because group and
// project names are matched case-insensitively.
type AlmostDuplicatesError struct {
	// Section is the offending top-level key, e.g. "projects_and_groups".
	Section string

	// Keys holds the colliding entries in their original casing.
	Keys []string
}

func (e *AlmostDuplicatesError) Error() string {
	return fmt.Sprintf(
		"almost duplicates in the keys of %s: %s differ only in case, which is ambiguous as group and project names ignore case",
		e.Section, strings.Join(e.Keys, ", "),
	)
}
