package confmap

import (
	"fmt"
	"strings"
)

// wildcardSuffix marks a skip-list entry that covers everything under a
// group, e.g. "myteam/*".
const wildcardSuffix = "/*"

// LookupFold returns the value for the first key in m whose lower-cased
// form equals the lower-cased key. Folding is plain strings.ToLower; no
// locale or Unicode normalization beyond that. Fails with ErrKeyNotFound
// when no key matches.
func LookupFold(m map[string]any, key string) (any, error) {
	folded := strings.ToLower(key)
	for k, v := range m {
		if strings.ToLower(k) == folded {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// IsSkipped reports whether item matches a skip-list entry, ignoring
// case. An entry matches verbatim, or, when it ends in "/*", as a raw
// string prefix: "myteam/*" skips "myteam", "myteam/x", and also the
// unrelated "myteamfoo". The prefix match is intentionally not
// path-segment-aware; downstream callers rely on the looser behavior.
func IsSkipped(list []string, item string) bool {
	item = strings.ToLower(item)

	for _, entry := range list {
		entry = strings.ToLower(entry)

		if entry == item {
			return true
		}

		if strings.HasSuffix(entry, wildcardSuffix) {
			prefix := entry[:len(entry)-len(wildcardSuffix)]
			if strings.HasPrefix(item, prefix) && len(item) >= len(prefix) {
				return true
			}
		}
	}

	return false
}
