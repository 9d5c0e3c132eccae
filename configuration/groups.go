package configuration

import (
	"sort"
	"strings"
)

// Groups returns the names of every group and subgroup with its own
// configuration layer (keys ending in "/*", suffix stripped), sorted
// ascending. The global "*" layer is not a group.
func (c *Configuration) Groups() []string {
	var groups []string
	for key := range c.mapAt("projects_and_groups") {
		if strings.HasSuffix(key, "/*") {
			groups = append(groups, strings.TrimSuffix(key, "/*"))
		}
	}
	sort.Strings(groups)
	return groups
}

// EffectiveGroupConfig merges the common layer with the group's own
// layer, the group winning on conflicts. A slash-joined name like
// "team/sub" resolves through the whole subgroup chain.
func (c *Configuration) EffectiveGroupConfig(group string) map[string]any {
	if strings.Contains(group, "/") {
		return c.EffectiveSubgroupConfig(group)
	}

	effective := mergeLayers(c.CommonConfig(), c.GroupConfig(group))
	c.logger.Debug("effective group config", "group", group, "config", effective)
	return effective
}

// EffectiveSubgroupConfig resolves a slash-joined subgroup chain like
// "g1/g2/g3" by folding left to right: the common layer first, then the
// layer of each ancestor prefix (g1, g1/g2, g1/g2/g3) in order, so the
// deepest subgroup's settings take precedence over its ancestors' and
// all take precedence over the common layer. Every lookup ignores case.
func (c *Configuration) EffectiveSubgroupConfig(subgroup string) map[string]any {
	effective := c.CommonConfig()

	prefix := ""
	for _, segment := range strings.Split(subgroup, "/") {
		if prefix == "" {
			prefix = segment
		} else {
			prefix = prefix + "/" + segment
		}
		effective = mergeLayers(effective, c.GroupConfig(prefix))
	}

	c.logger.Debug("effective subgroup config", "subgroup", subgroup, "config", effective)
	return effective
}
