package keywords

// stopwords is the fixed list of function words that never count as keywords.
var stopwords = map[string]struct{}{
	"and": {}, "or": {}, "but": {}, "so": {}, "because": {}, "a": {}, "an": {}, "the": {},
	"to": {}, "for": {}, "with": {}, "on": {}, "in": {}, "at": {}, "of": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "this": {}, "that": {}, "those": {}, "these": {}, "it": {}, "its": {}, "i": {},
	"you": {}, "your": {}, "we": {}, "they": {}, "them": {}, "he": {}, "she": {}, "him": {},
	"her": {}, "my": {}, "our": {}, "their": {},
}

// IsStopword reports whether token is in the stopword list.
// The token is expected to be cleaned already.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
