package analysis

import "strings"

type Category string

const (
	CategoryFunctional    Category = "Functional"
	CategoryNonFunctional Category = "Non-Functional"
	CategoryUncertain     Category = "Uncertain"
)

var functionalKeywords = map[string]struct{}{
	"login": {}, "upload": {}, "download": {}, "generate": {},
	"search": {}, "create": {}, "send": {}, "delete": {},
}

var nonFunctionalKeywords = map[string]struct{}{
	"fast": {}, "secure": {}, "scalable": {}, "reliable": {},
	"user-friendly": {}, "efficient": {},
}

// Classify assigns a category by keyword membership over the filtered tokens.
// The functional set takes precedence when both sets match.
func Classify(tokens []string) Category {
	if containsAny(tokens, functionalKeywords) {
		return CategoryFunctional
	}

	if containsAny(tokens, nonFunctionalKeywords) {
		return CategoryNonFunctional
	}

	return CategoryUncertain
}

func containsAny(tokens []string, keywords map[string]struct{}) bool {
	for _, token := range tokens {
		if _, ok := keywords[strings.ToLower(token)]; ok {
			return true
		}
	}

	return false
}
