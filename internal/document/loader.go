package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"attrcodec/internal/attributes"
)

// ErrNotMapping is returned when a document's root is not a mapping.
var ErrNotMapping = errors.New("document root must be a mapping")

// LoadFile loads and parses a document from the given path.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return Parse(data)
}

// Read parses a document from r.
func Read(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML or JSON data into a mapping. An empty document is an
// empty mapping.
func Parse(data []byte) (map[string]any, error) {
	var root yaml.Node

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if root.Kind == 0 {
		return map[string]any{}, nil
	}

	v, err := decodeNode(&root)
	if err != nil {
		return nil, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		if v == nil {
			return map[string]any{}, nil
		}

		return nil, ErrNotMapping
	}

	return m, nil
}

// decodeNode converts a YAML node into plain Go values, using the source
// text of mapping keys as map keys.
func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return decodeNode(n.Content[0])
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)

		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}

			if _, dup := m[key.Value]; dup {
				return nil, fmt.Errorf("line %d: duplicate key %q", key.Line, key.Value)
			}

			v, err := decodeNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			m[key.Value] = v
		}

		return m, nil
	case yaml.SequenceNode:
		seq := make([]any, 0, len(n.Content))

		for _, c := range n.Content {
			v, err := decodeNode(c)
			if err != nil {
				return nil, err
			}

			seq = append(seq, v)
		}

		return seq, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}

		return v, nil
	}
}

// Pairs returns the entries of a flat document as pairs sorted by key.
func Pairs(doc map[string]any) []attributes.Pair {
	pairs := make([]attributes.Pair, 0, len(doc))
	for k, v := range doc {
		pairs = append(pairs, attributes.Pair{Key: k, Value: v})
	}

	slices.SortFunc(pairs, func(a, b attributes.Pair) int {
		return strings.Compare(a.Key, b.Key)
	})

	return pairs
}

// FromPairs builds a flat document. Later pairs overwrite earlier ones.
func FromPairs(pairs []attributes.Pair) map[string]any {
	doc := make(map[string]any, len(pairs))
	for _, p := range pairs {
		doc[p.Key] = p.Value
	}

	return doc
}
