package configuration

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glabform/glabform/confmap"
)

// protectedSections are the top-level keys whose entries are matched
// case-insensitively and therefore must not contain almost-duplicates.
var protectedSections = []string{
	"projects_and_groups",
	"skip_groups",
	"skip_projects",
}

// Configuration owns a parsed configuration tree and answers effective
// configuration queries over it. The tree is parsed and validated once
// at construction and never mutated afterwards, so a Configuration is
// safe for concurrent readers.
type Configuration struct {
	config    map[string]any
	configDir string
	logger    *slog.Logger
}

// New loads, parses, and validates a configuration per opts. Any
// failure (conflicting sources, missing file, invalid YAML, structural
// guards, almost-duplicate keys) aborts construction.
func New(opts Options) (*Configuration, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	source, err := ResolveSource(opts)
	if err != nil {
		return nil, err
	}

	var data []byte
	if source.Inline != "" {
		logger.Debug("reading config from provided string")
		data = []byte(source.Inline)
	} else {
		logger.Debug("reading config from file", "path", source.Path)
		data, err = os.ReadFile(source.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, source.Path)
		}
	}

	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseInvalid, err)
	}
	if config == nil {
		// An empty document parses to a nil map.
		config = map[string]any{}
	}

	c := &Configuration{
		config:    config,
		configDir: source.ConfigDir,
		logger:    logger,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	logger.Debug("config loaded", "dir", c.configDir)
	return c, nil
}

// NewFromFile loads configuration from a file path.
func NewFromFile(path string) (*Configuration, error) {
	return New(Options{Path: path})
}

// NewFromString loads configuration from an inline YAML document.
func NewFromString(document string) (*Configuration, error) {
	return New(Options{Inline: document})
}

func (c *Configuration) validate() error {
	if truthy(c.GetDefault("example_config", nil)) {
		return ErrExampleConfig
	}

	// Missing config_version defaults to 1 and fails the check, so the
	// version must be explicitly 2.
	if v := c.GetDefault("config_version", 1); v != 2 {
		return fmt.Errorf("%w (got %v)", ErrUnsupportedVersion, v)
	}

	for _, section := range protectedSections {
		v := c.GetDefault(section, nil)
		if v == nil {
			continue
		}

		var items []string
		if m, ok := v.(map[string]any); ok {
			items = confmap.Keys(m)
		} else {
			items = confmap.Strings(v)
		}

		if dups := confmap.AlmostDuplicates(items); len(dups) > 0 {
			return &AlmostDuplicatesError{Section: section, Keys: dups}
		}
	}

	return nil
}

// Get returns the value at a pipe-delimited path, e.g.
// "projects_and_groups|*". It fails with confmap.ErrKeyNotFound when the
// path cannot be resolved.
func (c *Configuration) Get(path string) (any, error) {
	return confmap.Get(c.config, path)
}

// GetDefault is Get with a fallback for unresolvable paths.
func (c *Configuration) GetDefault(path string, fallback any) any {
	return confmap.GetDefault(c.config, path, fallback)
}

// ConfigDir returns the directory that relative file references inside
// the configuration resolve against.
func (c *Configuration) ConfigDir() string {
	return c.configDir
}

// CommonConfig returns the wildcard "*" layer applied to every group and
// project, or an empty tree if none is defined.
func (c *Configuration) CommonConfig() map[string]any {
	return c.mapAt("projects_and_groups|*")
}

// GroupConfig returns the group's or subgroup's own "<name>/*" layer,
// matched case-insensitively, or an empty tree if none is defined.
func (c *Configuration) GroupConfig(group string) map[string]any {
	return c.layer(group + "/*")
}

// ProjectConfig returns the project's own explicit layer, matched
// case-insensitively by its full "group/project" key, or an empty tree
// if none is defined.
func (c *Configuration) ProjectConfig(groupAndProject string) map[string]any {
	return c.layer(groupAndProject)
}

// IsGroupSkipped reports whether the group appears in skip_groups,
// ignoring case.
func (c *Configuration) IsGroupSkipped(group string) bool {
	return confmap.IsSkipped(confmap.Strings(c.GetDefault("skip_groups", nil)), group)
}

// IsProjectSkipped reports whether the project appears in skip_projects,
// ignoring case. A "myteam/*" entry skips every project under myteam.
func (c *Configuration) IsProjectSkipped(project string) bool {
	return confmap.IsSkipped(confmap.Strings(c.GetDefault("skip_projects", nil)), project)
}

// layer looks up one projects_and_groups entry case-insensitively.
// Absence is not an error; it contributes an empty layer.
func (c *Configuration) layer(key string) map[string]any {
	v, err := confmap.LookupFold(c.mapAt("projects_and_groups"), key)
	if err != nil {
		return map[string]any{}
	}
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// mergeLayers deep-merges a more general layer with a more specific one,
// the specific layer winning. Neither input is mutated.
func mergeLayers(general, specific map[string]any) map[string]any {
	return confmap.Merge(general, specific)
}

func (c *Configuration) mapAt(path string) map[string]any {
	if m, ok := c.GetDefault(path, nil).(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// truthy mirrors the loader's loose interpretation of flag-like keys:
// nil, false, zero, and empty values are falsy, everything else truthy.
func truthy(v any) bool {
	switch vv := v.(type) {
	case nil:
		return false
	case bool:
		return vv
	case string:
		return vv != ""
	case int:
		return vv != 0
	case int64:
		return vv != 0
	case float64:
		return vv != 0
	case []any:
		return len(vv) > 0
	case map[string]any:
		return len(vv) > 0
	}
	return true
}
