// Package configuration resolves effective configuration for groups,
// subgroups, and projects from a single hierarchical YAML document.
//
// The document keys entries under "projects_and_groups":
//
//	config_version: 2
//	projects_and_groups:
//	  "*":             # common layer, applied to everything
//	    members:
//	      enforce: true
//	  myteam/*:        # group layer, applied to everything under myteam
//	    project_settings:
//	      visibility: internal
//	  myteam/myproject: # project layer
//	    project_settings:
//	      visibility: private
//
// Effective configuration is computed by deep-merging layers from most
// general to most specific: common, then each group/subgroup in the
// entity's ancestor chain, then the project's own entry. More specific
// values win; nested mappings are merged, scalars and sequences are
// replaced.
//
// Group and project names are matched case-insensitively, so loading
// rejects documents whose keys differ only in case ("Team" next to
// "team") in projects_and_groups, skip_groups, or skip_projects.
//
// # Basic Usage
//
//	cfg, err := configuration.NewFromFile("config.yml")
//	if err != nil {
//	    // load-time errors are fatal: report and exit
//	}
//
//	for _, project := range cfg.Projects() {
//	    if cfg.IsProjectSkipped(project) {
//	        continue
//	    }
//	    effective := cfg.EffectiveProjectConfig(project)
//	    // apply effective config...
//	}
//
// A Configuration is immutable after construction and safe for
// concurrent readers without locking. Queries recompute their result on
// every call; nothing is cached or written back into the source tree.
package configuration
