package attributes

//go:generate go tool stringer -type=kind -trimprefix=kind -output=kind_string.go

// kind is the shape a trie node takes once every pair has been inserted.
type kind int

const (
	kindUnresolved kind = iota // no value and no children yet
	kindLeaf                   // holds a terminal value, possibly shadowing children
	kindMapping
	kindArray // every indexed child is a container
)
