package analysis

import (
	"strings"

	"github.com/samber/lo"
)

var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {},
	"a": {}, "an": {}, "and": {}, "or": {}, "to": {},
	"in": {}, "for": {}, "of": {}, "by": {}, "with": {},
	"should": {},
}

// RemoveStopWords drops stoplist members, matching case-insensitively while
// preserving the casing and order of surviving tokens.
func RemoveStopWords(tokens []string) []string {
	return lo.Filter(tokens, func(token string, _ int) bool {
		_, stop := stopWords[strings.ToLower(token)]
		return !stop
	})
}
