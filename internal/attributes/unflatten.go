package attributes

import (
	"errors"
	"fmt"
	"strings"

	"attrcodec/internal/diagnostic"
)

// Pair is one flat attribute: a separator-delimited key and its value.
type Pair struct {
	Key   string
	Value any
}

var (
	// ErrInvalidPairs is returned by Unflatten when its input violates a
	// precondition. The returned error also wraps the specific cause.
	ErrInvalidPairs = errors.New("invalid attribute pairs")
	// ErrEmptySegment reports a key that is empty or has an empty segment.
	ErrEmptySegment = errors.New("empty key segment")
	// ErrDuplicateKey reports a key that occurs more than once, including
	// index spellings such as "a.01.b" and "a.1.b" that name one path.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Diagnostic codes reported by Check.
const (
	CodeEmptySegment   = "empty-segment"
	CodeDuplicateKey   = "duplicate-key"
	CodeKeyCollision   = "key-collision"
	CodeIndexCollision = "index-collision"
	CodeNilValue       = "nil-value"
)

// Unflatten rebuilds the nested tree described by pairs. Mappings become
// map[string]any and arrays become []any whose elements are mappings.
// Values are stored as given, so a mapping value is never split further.
// Pairs with a nil value are skipped.
//
// Array indices are compared by numeric value, so "a.01.x" and "a.1.y" land
// in the same element.
//
// The result is the same for every ordering of pairs. Keys must be unique
// and must not contain empty segments; otherwise Unflatten returns an error
// wrapping ErrInvalidPairs and nothing else.
func Unflatten(pairs []Pair, opts ...Option) (map[string]any, error) {
	cfg := newConfig(opts)

	root, diags := build(pairs, cfg)
	if diags.HasErrors() {
		return nil, invalidPairsError(diags)
	}

	return root.mapping(cfg.separator), nil
}

// build inserts every usable pair into a fresh trie.
func build(pairs []Pair, cfg *config) (*node, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	root := newNode()
	seen := make(map[string]struct{}, len(pairs))

	for _, p := range pairs {
		if p.Value == nil {
			diags.AddInfo(CodeNilValue, "pair with nil value skipped", p.Key)
			continue
		}

		segments, ok := splitKey(p.Key, cfg.separator)
		if !ok {
			diags.AddError(CodeEmptySegment, "key is empty or has an empty segment", p.Key)
			continue
		}

		segments = canonicalSegments(segments)

		path := strings.Join(segments, cfg.separator)
		if _, dup := seen[path]; dup {
			diags.AddError(CodeDuplicateKey, "key occurs more than once", p.Key)
			continue
		}

		seen[path] = struct{}{}

		root.insert(segments, p.Value)
	}

	return root, diags
}

func invalidPairsError(diags diagnostic.Diagnostics) error {
	var causes []error

	for _, d := range diags.Errors {
		switch d.Code {
		case CodeEmptySegment:
			causes = append(causes, fmt.Errorf("%w: %q", ErrEmptySegment, d.Key))
		case CodeDuplicateKey:
			causes = append(causes, fmt.Errorf("%w: %q", ErrDuplicateKey, d.Key))
		}
	}

	return fmt.Errorf("%w: %w", ErrInvalidPairs, errors.Join(causes...))
}
