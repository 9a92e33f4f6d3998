package attributes

import (
	"maps"
	"slices"
)

// node is one segment of the prefix tree built from attribute keys.
//
// Children are keyed by segment text. A child is also recorded in indexed
// when some key continues past it with a digit-only segment, which makes it
// a candidate array element of this node.
type node struct {
	value    any
	terminal bool
	children map[string]*node
	indexed  map[string]struct{}
}

func newNode() *node {
	return &node{}
}

func (n *node) child(segment string) *node {
	if n.children == nil {
		n.children = make(map[string]*node)
	}

	c, ok := n.children[segment]
	if !ok {
		c = newNode()
		n.children[segment] = c
	}

	return c
}

func (n *node) markIndex(segment string) {
	if n.indexed == nil {
		n.indexed = make(map[string]struct{})
	}

	n.indexed[segment] = struct{}{}
}

func (n *node) isIndexed(segment string) bool {
	_, ok := n.indexed[segment]
	return ok
}

// insert places value at the end of the path described by segments. Every
// digit-only segment except the last one marks an array index on its parent.
func (n *node) insert(segments []string, value any) {
	current := n
	last := len(segments) - 1

	for i, segment := range segments {
		if i < last && isIndex(segment) {
			current.markIndex(segment)
		}

		current = current.child(segment)
	}

	current.value = value
	current.terminal = true
}

func (n *node) kind() kind {
	switch {
	case n.terminal:
		return kindLeaf
	case len(n.children) == 0:
		return kindUnresolved
	case len(n.indexed) == 0:
		return kindMapping
	}

	for segment := range n.indexed {
		if n.children[segment].terminal {
			return kindMapping
		}
	}

	return kindArray
}

// sortedChildren returns child segments in a fixed order so that the output
// of emit never depends on map iteration.
func (n *node) sortedChildren() []string {
	return slices.Sorted(maps.Keys(n.children))
}

// sortedIndices returns indexed child segments in ascending numeric order.
func (n *node) sortedIndices() []string {
	return slices.SortedFunc(maps.Keys(n.indexed), compareIndex)
}

// emit writes the subtree rooted at n into out under prefix. An empty prefix
// marks the top of a mapping scope (the root or an array element), where
// indexed children are emitted as ordinary keys.
func (n *node) emit(out map[string]any, prefix, separator string) {
	skipIndexed := false

	switch {
	case n.terminal:
		out[prefix] = n.value
	case prefix == "":
	case n.kind() == kindArray:
		out[prefix] = n.elements(separator)
		skipIndexed = true
	default:
		out[prefix] = n.mapping(separator)
		return
	}

	for _, segment := range n.sortedChildren() {
		if skipIndexed && n.isIndexed(segment) {
			continue
		}

		n.children[segment].emit(out, joinKey(prefix, segment, separator), separator)
	}
}

func (n *node) mapping(separator string) map[string]any {
	out := make(map[string]any, len(n.children))
	n.emit(out, "", separator)

	return out
}

func (n *node) elements(separator string) []any {
	indices := n.sortedIndices()

	elements := make([]any, 0, len(indices))
	for _, segment := range indices {
		elements = append(elements, n.children[segment].mapping(separator))
	}

	return elements
}
