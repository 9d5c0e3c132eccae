package configuration

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Default locations for file-based configuration.
const (
	// DefaultFileName is the config file name looked up in default
	// locations.
	DefaultFileName = "config.yml"

	// DefaultDirName is the directory under the user's home holding the
	// config when no explicit path is given (library use).
	DefaultDirName = ".glabform"
)

// Options configures construction of a Configuration.
type Options struct {
	// Path is the config file to read. Mutually exclusive with Inline.
	Path string

	// Inline is a complete YAML document supplied directly, bypassing
	// file I/O. Mutually exclusive with Path.
	Inline string

	// HomeDir overrides the user's home directory when falling back to
	// the default config location. Empty means os.UserHomeDir.
	HomeDir string

	// EnvConfigDir, when set, forces the config to be read from
	// <EnvConfigDir>/config.yml regardless of Path. Callers typically
	// populate it from an environment override.
	EnvConfigDir string

	// Logger receives debug output during loading and resolution.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// Source is a resolved configuration input: exactly one of Path or
// Inline is set.
type Source struct {
	// Path is the file to read, absolute or caller-relative.
	Path string

	// Inline is the document itself when no file is involved.
	Inline string

	// ConfigDir is the directory that relative file references inside
	// the configuration resolve against.
	ConfigDir string
}

// ResolveSource decides where configuration bytes come from, without
// touching the filesystem. The rules, in order:
//
//  1. Both Path and Inline set fails with ErrSourceConflict.
//  2. Inline wins when set; ConfigDir becomes ".".
//  3. EnvConfigDir forces <EnvConfigDir>/config.yml.
//  4. An empty Path falls back to <home>/.glabform/config.yml.
//  5. "config.yml" or "./config.yml" resolves against the current
//     working directory.
//  6. Any other Path is used verbatim.
func ResolveSource(opts Options) (Source, error) {
	if opts.Path != "" && opts.Inline != "" {
		return Source{}, ErrSourceConflict
	}

	if opts.Inline != "" {
		return Source{Inline: opts.Inline, ConfigDir: "."}, nil
	}

	path := opts.Path
	switch {
	case opts.EnvConfigDir != "":
		path = filepath.Join(opts.EnvConfigDir, DefaultFileName)

	case path == "":
		home := opts.HomeDir
		if home == "" {
			home, _ = os.UserHomeDir()
		}
		path = filepath.Join(home, DefaultDirName, DefaultFileName)

	case path == DefaultFileName || path == "./"+DefaultFileName:
		if wd, err := os.Getwd(); err == nil {
			path = filepath.Join(wd, DefaultFileName)
		}
	}

	return Source{Path: path, ConfigDir: filepath.Dir(path)}, nil
}
