// Package match provides key normalization, Levenshtein distance
// calculation, and candidate ranking for "did you mean" suggestions.
//
// Key functions:
//   - NormalizeKey: normalizes attribute keys for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks known keys against a key that was not found
package match
