package confmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Delimiter separates segments in a Get path.
//
// A literal pipe inside a real key is not supported; there is no escaping
// mechanism.
const Delimiter = "|"

// ErrKeyNotFound indicates a path or key could not be resolved.
var ErrKeyNotFound = errors.New("key not found")

// Get descends root one path segment at a time and returns the value at
// the end of the path. Each intermediate value must be a mapping; a
// missing segment or a non-mapping intermediate fails with ErrKeyNotFound.
//
// For a document like:
//
//	group_settings:
//	  sddc:
//	    deploy_keys:
//	      qa_puppet:
//	        key: some key
//
// the path "group_settings|sddc|deploy_keys" returns the deploy_keys
// mapping.
func Get(root map[string]any, path string) (any, error) {
	var current any = root
	for _, segment := range strings.Split(path, Delimiter) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, path)
		}
		current, ok = m[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, path)
		}
	}
	return current, nil
}

// GetDefault is Get with a fallback value for unresolvable paths.
func GetDefault(root map[string]any, path string, fallback any) any {
	v, err := Get(root, path)
	if err != nil {
		return fallback
	}
	return v
}

// Keys returns the keys of m sorted ascending. Go maps do not preserve
// insertion order, so sorting keeps key-derived reports deterministic.
func Keys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Strings coerces a parsed YAML sequence to a string slice. Scalar
// elements that are not strings are rendered with fmt.Sprint. Any other
// value yields nil.
func Strings(v any) []string {
	switch vv := v.(type) {
	case nil:
		return nil
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(e))
			}
		}
		return out
	}
	return nil
}
