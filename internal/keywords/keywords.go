// Package keywords provides text cleaning, keyword extraction, keyword overlap
// scoring and missing-keyword suggestions for resume/job comparisons.
package keywords

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// minKeywordRunes is the shortest token length (exclusive) that counts as a keyword.
const minKeywordRunes = 2

// punctuation is the ASCII punctuation set; each occurrence becomes a space.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var punctuationReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(punctuation)*2)
	for _, r := range punctuation {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}()

// Set is an unordered collection of unique keywords.
type Set map[string]struct{}

// NewSet builds a Set from the given words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether word is in the set.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of keywords in the set.
func (s Set) Len() int {
	return len(s)
}

// Intersect returns the keywords present in both sets.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for w := range small {
		if large.Has(w) {
			out[w] = struct{}{}
		}
	}
	return out
}

// Sorted returns the keywords in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Clean lowercases text and replaces every punctuation character with a space,
// keeping word boundaries intact.
func Clean(text string) string {
	return punctuationReplacer.Replace(strings.ToLower(text))
}

// Tokenize splits cleaned text on whitespace, preserving order and duplicates.
func Tokenize(text string) []string {
	return strings.Fields(Clean(text))
}

// IsKeyword reports whether a cleaned token counts as a keyword:
// longer than two characters and not a stopword.
func IsKeyword(token string) bool {
	return utf8.RuneCountInString(token) > minKeywordRunes && !IsStopword(token)
}

// Extract returns the unique keywords of text. Frequency is discarded.
func Extract(text string) Set {
	out := make(Set)
	for _, tok := range Tokenize(text) {
		if IsKeyword(tok) {
			out[tok] = struct{}{}
		}
	}
	return out
}
