package match

import (
	"slices"
	"strings"
)

// Candidate is a known key scored against a key that was looked up.
type Candidate struct {
	Key   string
	Score float64 // KeySimilarity, 0-1
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every candidate key against target. The result is sorted by
// score descending, then by key for determinism. Duplicate keys are scored
// once.
func Rank(target string, keys []string) CandidateList {
	seen := make(map[string]struct{}, len(keys))
	candidates := make(CandidateList, 0, len(keys))

	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}

		candidates = append(candidates, Candidate{
			Key:   key,
			Score: KeySimilarity(target, key),
		})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}

			return 1
		}

		return strings.Compare(a.Key, b.Key)
	})

	return candidates
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with a score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Keys returns the candidate keys in rank order.
func (c CandidateList) Keys() []string {
	keys := make([]string, len(c))
	for i, cand := range c {
		keys[i] = cand.Key
	}

	return keys
}

// DefaultMinScore is the lowest score worth suggesting to a user.
const DefaultMinScore = 0.6
