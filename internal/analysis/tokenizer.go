// Package analysis holds the pure text pipeline behind requirement intake:
// tokenization, stop-word removal and keyword classification.
package analysis

import "regexp"

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize splits text into maximal runs of word characters (letters, digits,
// underscore), left to right. Punctuation and whitespace are discarded.
func Tokenize(text string) []string {
	tokens := wordPattern.FindAllString(text, -1)

	if tokens == nil {
		return []string{}
	}

	return tokens
}
