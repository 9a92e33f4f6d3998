package attributes

import (
	"fmt"

	"attrcodec/internal/diagnostic"
)

// Check reports what Unflatten would do with pairs: errors for inputs it
// rejects, warnings for every collision that keeps a dotted key literal, and
// infos for skipped pairs.
func Check(pairs []Pair, opts ...Option) diagnostic.Diagnostics {
	cfg := newConfig(opts)

	root, diags := build(pairs, cfg)
	diags.Merge(root.collisions(cfg.separator))

	return diags
}

func (n *node) collisions(separator string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	n.inspect("", separator, &diags)

	return diags
}

// inspect walks the trie in a fixed order and records collisions. path is
// the full key of n from the root.
func (n *node) inspect(path, separator string, diags *diagnostic.Diagnostics) {
	switch n.kind() {
	case kindLeaf:
		if len(n.children) > 0 {
			diags.AddWarning(CodeKeyCollision,
				fmt.Sprintf("value shadows %d nested key(s); they are kept as dotted keys", len(n.children)),
				path)
		}
	case kindArray:
		if path == "" {
			break
		}

		if named := len(n.children) - len(n.indexed); named > 0 {
			diags.AddWarning(CodeKeyCollision,
				fmt.Sprintf("array shares its key with %d named key(s); they are kept as dotted keys", named),
				path)
		}
	case kindMapping:
		if path == "" {
			break
		}

		for _, segment := range n.sortedIndices() {
			if n.children[segment].terminal {
				diags.AddWarning(CodeIndexCollision,
					fmt.Sprintf("index %s holds a value; elements are kept as a mapping", segment),
					path)

				break
			}
		}
	case kindUnresolved:
	}

	for _, segment := range n.sortedChildren() {
		n.children[segment].inspect(joinKey(path, segment, separator), separator, diags)
	}
}
