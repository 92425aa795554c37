package semantic

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 and 1, or 0 when the vectors differ in length,
// are empty, or either has zero norm.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// toPercent rescales a cosine similarity to [0,100]. NaN maps to 0.
func toPercent(cos float64) float64 {
	if math.IsNaN(cos) {
		return 0
	}
	return math.Max(0, math.Min(100, cos*100))
}
