package keywords

import "sort"

// MaxSuggestions caps the number of missing keywords returned by Suggestions.
const MaxSuggestions = 10

// MatchScore returns the percentage of job keywords also found in the resume.
// The denominator is the job keyword count, so the score measures coverage of
// the job's vocabulary. Either set being empty yields 0.
func MatchScore(resume, job Set) float64 {
	if resume.Len() == 0 || job.Len() == 0 {
		return 0.0
	}
	shared := resume.Intersect(job).Len()
	return float64(shared) / float64(job.Len()) * 100
}

// termCount is a job token with its frequency in the job text.
type termCount struct {
	term  string
	count int
}

// Suggestions returns up to MaxSuggestions job keywords missing from the resume,
// most frequent first. Equal frequencies keep first-occurrence order.
// Frequencies are recomputed from the raw job text.
func Suggestions(resume Set, jobText string) []string {
	index := make(map[string]int)
	var counts []termCount
	for _, tok := range Tokenize(jobText) {
		if i, ok := index[tok]; ok {
			counts[i].count++
			continue
		}
		index[tok] = len(counts)
		counts = append(counts, termCount{term: tok, count: 1})
	}

	missing := make([]termCount, 0, len(counts))
	for _, tc := range counts {
		if IsKeyword(tc.term) && !resume.Has(tc.term) {
			missing = append(missing, tc)
		}
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].count > missing[j].count
	})

	n := min(len(missing), MaxSuggestions)
	out := make([]string, n)
	for i := range n {
		out[i] = missing[i].term
	}
	return out
}
