// Package confmap provides low-level helpers over parsed configuration
// trees (map[string]any, the shape gopkg.in/yaml.v3 produces).
//
// The helpers fall into four groups:
//
//   - Path access: Get and GetDefault descend nested mappings using a
//     pipe-delimited path such as "projects_and_groups|*".
//   - Case-insensitive matching: LookupFold finds a mapping key ignoring
//     case, and IsSkipped matches an item against a skip list with
//     "prefix/*" wildcard entries.
//   - Merging: Merge deep-merges two trees, with the more specific tree
//     winning on conflicting leaves. Inputs are never mutated.
//   - Validation: AlmostDuplicates reports entries that are distinct
//     strings but identical after lower-casing.
//
// All functions treat their inputs as read-only. The maps passed in are
// borrowed views into a larger configuration tree and are never copied
// except where Merge needs a fresh result.
package confmap
