package confmap

import "strings"

// AlmostDuplicates returns the items that are distinct strings but equal
// to another item after lower-casing, in input order. Verbatim repeats
// of the same string are not collisions. An empty result means the
// items are unambiguous under case-insensitive matching.
//
// Group and project names are de facto case-insensitive: two groups whose
// names differ only in case cannot coexist, so configuration keys that
// differ only in case are ambiguous and must be rejected.
func AlmostDuplicates(items []string) []string {
	uniq := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		uniq = append(uniq, item)
	}

	// Lower-casing collapses colliding entries, lowering the cardinality.
	counts := make(map[string]int, len(uniq))
	for _, item := range uniq {
		counts[strings.ToLower(item)]++
	}
	if len(counts) == len(uniq) {
		return nil
	}

	var duplicates []string
	for _, item := range uniq {
		if counts[strings.ToLower(item)] > 1 {
			duplicates = append(duplicates, item)
		}
	}
	return duplicates
}
