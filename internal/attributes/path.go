package attributes

import (
	"slices"
	"strings"
)

// splitKey splits key into its segments. It returns false when the key is
// empty or any segment is empty.
func splitKey(key, separator string) ([]string, bool) {
	if key == "" {
		return nil, false
	}

	segments := strings.Split(key, separator)
	for _, segment := range segments {
		if segment == "" {
			return nil, false
		}
	}

	return segments, true
}

func joinKey(prefix, segment, separator string) string {
	if prefix == "" {
		return segment
	}

	return prefix + separator + segment
}

// isIndex reports whether segment is a non-negative base-10 integer.
func isIndex(segment string) bool {
	if segment == "" {
		return false
	}

	for i := 0; i < len(segment); i++ {
		if !isDigit(segment[i]) {
			return false
		}
	}

	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// canonicalIndex drops the leading zeros of an index segment, so "01" and
// "1" name the same element.
func canonicalIndex(segment string) string {
	if trimmed := strings.TrimLeft(segment, "0"); trimmed != "" {
		return trimmed
	}

	return "0"
}

// canonicalSegments rewrites every index segment except the last one to its
// canonical spelling. The last segment is always a literal mapping key.
func canonicalSegments(segments []string) []string {
	out := slices.Clone(segments)
	for i := 0; i < len(out)-1; i++ {
		if isIndex(out[i]) {
			out[i] = canonicalIndex(out[i])
		}
	}

	return out
}

// compareIndex orders two index segments by numeric value without parsing
// them, so arbitrarily long indices compare exactly. Equal values with
// different spellings ("01", "1") are ordered by spelling.
func compareIndex(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")

	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}

		return 1
	}

	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

func hasAnySuffix(key string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}

	return false
}
