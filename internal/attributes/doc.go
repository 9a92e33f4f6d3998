// Package attributes converts span attributes between their flat,
// separator-delimited form and nested trees.
//
// OpenTelemetry does not allow nested attribute values, so structured data
// such as retrieved documents or token counts travels as flat pairs:
//
//	retrieval.documents.0.document.content = "abc"
//	retrieval.documents.1.document.content = "bcd"
//	llm.token_count.prompt                 = 10
//
// Unflatten rebuilds the tree those pairs describe:
//
//	{
//	  "retrieval": {"documents": [
//	    {"document": {"content": "abc"}},
//	    {"document": {"content": "bcd"}},
//	  ]},
//	  "llm": {"token_count": {"prompt": 10}},
//	}
//
// # Arrays
//
// A segment made only of ASCII digits that is followed by further segments
// is an array index. Indices are emitted in ascending numeric order without
// padding gaps. A digit segment that ends its key, or that sits directly
// under the root or an array element, is a literal mapping key.
//
// # Collisions
//
// When one key ends where another continues ("a" and "a.b"), the shorter key
// keeps the slot and the rest of the longer key is kept as one literal key
// at the point of divergence: {"a": 0, "a.b": 1}. The result never depends
// on the order of the input pairs.
//
// # Lookup
//
// GetAttributeValue descends a tree one segment at a time and reports
// absence with a false second result instead of an error. It never indexes
// into sequences.
package attributes
