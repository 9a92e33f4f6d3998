// Package document loads and writes attribute documents.
//
// A document is a YAML or JSON mapping. Flat documents hold one dotted key
// per attribute:
//
//	llm.token_count.prompt: 10
//	retrieval.documents.0.document.content: abc
//
// Nested documents hold the tree that Unflatten produces. JSON input is
// parsed as YAML, so both formats share one loader. Mapping keys keep the
// literal text they were written with: 1.10 is the key "1.10", not a float.
package document
