package match

import "strings"

// NormalizeKey case-folds an attribute key and drops the word separators
// that commonly vary between conventions ("token_count", "tokenCount",
// "token-count"). Path separators are kept.
func NormalizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}

		return r
	}, strings.ToLower(key))
}
