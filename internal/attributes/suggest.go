package attributes

import (
	"slices"
	"strings"

	"attrcodec/internal/match"
)

// Suggest returns up to n keys of tree that resemble key, best match first.
// Candidates are every key GetAttributeValue can resolve in tree: the
// flattened leaves and all of their prefixes.
func Suggest(tree map[string]any, key string, n int, opts ...Option) []string {
	cfg := newConfig(opts)

	return match.Rank(key, reachableKeys(tree, cfg.separator)).
		AboveThreshold(match.DefaultMinScore).
		Top(n).
		Keys()
}

func reachableKeys(tree map[string]any, separator string) []string {
	var keys []string

	var walk func(m map[string]any, prefix string)
	walk = func(m map[string]any, prefix string) {
		for k, v := range m {
			// Keys containing the separator cannot be reached one segment at a time.
			if k == "" || strings.Contains(k, separator) {
				continue
			}

			full := joinKey(prefix, k, separator)
			keys = append(keys, full)

			if child, ok := v.(map[string]any); ok {
				walk(child, full)
			}
		}
	}
	walk(tree, "")

	slices.Sort(keys)

	return keys
}
