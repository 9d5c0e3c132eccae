package configuration

import (
	"sort"
	"strings"
)

// Projects returns every project explicitly declared in the
// configuration, sorted ascending. The global "*" entry and "…/*" group
// wildcards are excluded; the sort is case-sensitive on the raw keys.
func (c *Configuration) Projects() []string {
	var projects []string
	for key := range c.mapAt("projects_and_groups") {
		if key != "*" && !strings.HasSuffix(key, "/*") {
			projects = append(projects, key)
		}
	}
	sort.Strings(projects)
	return projects
}

// EffectiveProjectConfig merges configuration layers for a
// "group/project" (or "group/subgroup/.../project") path, from most
// general to most specific: the common layer, then the group or subgroup
// chain, then the project's own explicit layer. Merging is additive;
// specific values win.
func (c *Configuration) EffectiveProjectConfig(groupAndProject string) map[string]any {
	commonConfig := c.CommonConfig()
	c.logger.Debug("common config", "config", commonConfig)

	var groupConfig map[string]any
	group := groupAndProject
	if i := strings.LastIndex(groupAndProject, "/"); i >= 0 {
		group = groupAndProject[:i]
		if strings.Contains(group, "/") {
			// Project under a subgroup, like "x/y/z": take config from
			// group "x" as well as subgroup "x/y".
			groupConfig = c.EffectiveSubgroupConfig(group)
		} else {
			groupConfig = c.GroupConfig(group)
		}
	} else {
		groupConfig = map[string]any{}
	}
	c.logger.Debug("effective group/subgroup config", "group", group, "config", groupConfig)

	projectConfig := c.ProjectConfig(groupAndProject)
	c.logger.Debug("project config", "project", groupAndProject, "config", projectConfig)

	effective := mergeLayers(mergeLayers(commonConfig, groupConfig), projectConfig)
	c.logger.Debug("effective project config", "project", groupAndProject, "config", effective)
	return effective
}
