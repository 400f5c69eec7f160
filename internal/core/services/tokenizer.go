package services

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

var stopwords = map[string]struct{}{
	"with": {}, "and": {}, "the": {}, "a": {}, "an": {}, "but": {},
	"for": {}, "on": {}, "in": {}, "at": {}, "to": {}, "of": {},
	"my": {}, "is": {},
}

// Tokenize lowercases the text, extracts alphanumeric runs as words, and
// drops stopwords. Each retained word is emitted as a token, followed by
// its adjacent-word bigram when that bigram is itself not a stopword, so
// the keyword table can match both "night" and "late night".
func Tokenize(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	var tokens []string
	for i, w := range words {
		if _, stop := stopwords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
		if i+1 < len(words) {
			bigram := w + " " + words[i+1]
			if _, stop := stopwords[bigram]; !stop {
				tokens = append(tokens, bigram)
			}
		}
	}
	return tokens
}
