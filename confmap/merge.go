package confmap

import (
	"github.com/knadh/koanf/maps"
)

// Merge deep-merges two configuration trees, the more specific one
// winning. Keys present in both merge recursively when both values are
// mappings; otherwise the specific value replaces the general one
// outright (sequences and scalars are replaced, not combined). Keys
// present in only one input pass through unchanged.
//
// Neither input is mutated and the result shares no mapping with either,
// so the same general tree can be merged into many specific trees
// concurrently. Merge is associative but not commutative: callers must
// always pass (general, specific) in that order.
func Merge(general, specific map[string]any) map[string]any {
	merged := maps.Copy(general)
	if merged == nil {
		merged = map[string]any{}
	}
	maps.Merge(maps.Copy(specific), merged)
	return merged
}
