// Package glabform provides hierarchical configuration resolution for
// group- and project-based automation.
//
// The package is organized into subpackages by concern:
//
//   - configuration: loading, validation, and effective-config queries
//     over the hierarchical YAML document
//   - confmap: path access, case-insensitive matching, deep merging, and
//     almost-duplicate detection over parsed configuration maps
//   - filter: providers that narrow the entity set to non-empty,
//     non-skipped configurations
//   - testutil: fixture helpers shared by the tests
//
// # Quick Start
//
//	import "github.com/glabform/glabform/configuration"
//
//	cfg, err := configuration.NewFromFile("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	effective := cfg.EffectiveProjectConfig("myteam/myproject")
//
// See the configuration package documentation for the layering and
// merge semantics.
package glabform
