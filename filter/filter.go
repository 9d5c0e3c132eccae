// Package filter narrows the configured entity set down to the entries
// worth processing: entities that are not skipped and whose effective
// configuration is non-empty.
package filter

import (
	"errors"

	"github.com/glabform/glabform/configuration"
)

// Provider construction errors.
var (
	// ErrMissingProjectsAndGroups indicates the configuration has no
	// projects_and_groups key at all.
	ErrMissingProjectsAndGroups = errors.New("configuration contains no 'projects_and_groups' key")

	// ErrEmptyProjectsAndGroups indicates the projects_and_groups key
	// exists but holds no entries.
	ErrEmptyProjectsAndGroups = errors.New("'projects_and_groups' key contains no entries")
)

// NonEmptyConfigsProvider lists the groups and projects that actually
// have configuration to apply.
type NonEmptyConfigsProvider struct {
	config *configuration.Configuration
}

// NewNonEmptyConfigsProvider validates that the configuration declares a
// non-empty projects_and_groups section and returns a provider over it.
func NewNonEmptyConfigsProvider(cfg *configuration.Configuration) (*NonEmptyConfigsProvider, error) {
	v, err := cfg.Get("projects_and_groups")
	if err != nil {
		return nil, ErrMissingProjectsAndGroups
	}
	if m, ok := v.(map[string]any); !ok || len(m) == 0 {
		return nil, ErrEmptyProjectsAndGroups
	}
	return &NonEmptyConfigsProvider{config: cfg}, nil
}

// Groups returns the configured groups that are not skipped and whose
// effective configuration is non-empty, sorted.
func (p *NonEmptyConfigsProvider) Groups() []string {
	var groups []string
	for _, group := range p.config.Groups() {
		if p.config.IsGroupSkipped(group) {
			continue
		}
		if len(p.config.EffectiveGroupConfig(group)) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// Projects returns the explicitly configured projects that are not
// skipped and whose effective configuration is non-empty, sorted.
func (p *NonEmptyConfigsProvider) Projects() []string {
	var projects []string
	for _, project := range p.config.Projects() {
		if p.config.IsProjectSkipped(project) {
			continue
		}
		if len(p.config.EffectiveProjectConfig(project)) > 0 {
			projects = append(projects, project)
		}
	}
	return projects
}
