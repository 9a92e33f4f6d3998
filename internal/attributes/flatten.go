package attributes

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Flatten turns a nested tree into pairs sorted by key. Nested mappings are
// descended and nil leaves are dropped.
//
// With WithRecurseOnSequence, a sequence holding at least one mapping is
// expanded into one indexed prefix per mapping element; its other elements
// are dropped. Sequences without mappings are always kept as values. With
// WithJSONStringAttributes, mappings under a matching key are encoded as
// JSON strings.
//
// A tree in which two paths flatten to the same key, such as
// {"a.b": 1, "a": {"b": 2}}, has no flat form; Flatten returns an error
// wrapping ErrDuplicateKey for it.
func Flatten(tree map[string]any, opts ...Option) ([]Pair, error) {
	cfg := newConfig(opts)

	var pairs []Pair
	if err := flattenMapping(&pairs, tree, "", cfg); err != nil {
		return nil, err
	}

	slices.SortFunc(pairs, func(a, b Pair) int {
		return strings.Compare(a.Key, b.Key)
	})

	for i := 1; i < len(pairs); i++ {
		if pairs[i].Key == pairs[i-1].Key {
			return nil, fmt.Errorf("failed to flatten tree: %w: %q", ErrDuplicateKey, pairs[i].Key)
		}
	}

	return pairs, nil
}

func flattenMapping(out *[]Pair, m map[string]any, prefix string, cfg *config) error {
	for key, value := range m {
		prefixed := joinKey(prefix, key, cfg.separator)

		switch v := value.(type) {
		case nil:
		case map[string]any:
			if hasAnySuffix(prefixed, cfg.jsonStringSuffixes) {
				encoded, err := json.Marshal(v)
				if err != nil {
					return fmt.Errorf("failed to encode %q as JSON: %w", prefixed, err)
				}

				*out = append(*out, Pair{Key: prefixed, Value: string(encoded)})

				continue
			}

			if err := flattenMapping(out, v, prefixed, cfg); err != nil {
				return err
			}
		case []any:
			if !cfg.recurseOnSequence || !HasMapping(v) {
				*out = append(*out, Pair{Key: prefixed, Value: v})
				continue
			}

			if err := flattenSequence(out, v, prefixed, cfg); err != nil {
				return err
			}
		default:
			*out = append(*out, Pair{Key: prefixed, Value: v})
		}
	}

	return nil
}

func flattenSequence(out *[]Pair, seq []any, prefix string, cfg *config) error {
	for i, elem := range seq {
		m, ok := elem.(map[string]any)
		if !ok {
			continue
		}

		if err := flattenMapping(out, m, joinKey(prefix, strconv.Itoa(i), cfg.separator), cfg); err != nil {
			return err
		}
	}

	return nil
}

// HasMapping reports whether seq contains a map[string]any element.
func HasMapping(seq []any) bool {
	for _, elem := range seq {
		if _, ok := elem.(map[string]any); ok {
			return true
		}
	}

	return false
}

// LoadJSONStrings returns a copy of pairs in which every string value whose
// key ends with one of suffixes is replaced by its decoded JSON value.
func LoadJSONStrings(pairs []Pair, suffixes ...string) ([]Pair, error) {
	loaded := make([]Pair, len(pairs))

	for i, p := range pairs {
		loaded[i] = p

		s, ok := p.Value.(string)
		if !ok || !hasAnySuffix(p.Key, suffixes) {
			continue
		}

		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode JSON string attribute %q: %w", p.Key, err)
		}

		loaded[i].Value = decoded
	}

	return loaded, nil
}
