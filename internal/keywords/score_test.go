package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchScore_EmptySets(t *testing.T) {
	k := NewSet("python", "docker")
	assert.Equal(t, 0.0, MatchScore(NewSet(), k))
	assert.Equal(t, 0.0, MatchScore(k, NewSet()))
	assert.Equal(t, 0.0, MatchScore(NewSet(), NewSet()))
}

func TestMatchScore_IdenticalSets(t *testing.T) {
	k := NewSet("python", "docker", "aws")
	assert.Equal(t, 100.0, MatchScore(k, k))
}

func TestMatchScore_OrderInvariant(t *testing.T) {
	a := MatchScore(NewSet("go", "sql", "aws"), NewSet("aws", "go", "kafka", "redis"))
	b := MatchScore(NewSet("aws", "sql", "go"), NewSet("redis", "kafka", "go", "aws"))
	assert.Equal(t, a, b)
	assert.InDelta(t, 50.0, a, 1e-9)
}

func TestMatchScore_Asymmetric(t *testing.T) {
	resume := NewSet("go", "sql", "aws", "kafka")
	job := NewSet("go", "sql")
	assert.Equal(t, 100.0, MatchScore(resume, job))
	assert.Equal(t, 50.0, MatchScore(job, resume))
}

func TestSuggestions_FrequencyRanking(t *testing.T) {
	job := "Kubernetes experience. Kubernetes and Terraform. Kubernetes, Terraform, Python."
	got := Suggestions(NewSet("python"), job)
	assert.Equal(t, []string{"kubernetes", "terraform", "experience"}, got)
}

func TestSuggestions_TiesKeepFirstOccurrence(t *testing.T) {
	got := Suggestions(NewSet(), "zeta alpha mike alpha zeta")
	assert.Equal(t, []string{"zeta", "alpha", "mike"}, got)
}

func TestSuggestions_CappedUniqueAndMissingOnly(t *testing.T) {
	job := "one1 two2 three3 four4 five5 six6 seven7 eight8 nine9 ten10 eleven11 twelve12 " +
		"one1 golang golang golang"
	resume := NewSet("golang")
	got := Suggestions(resume, job)

	require.Len(t, got, MaxSuggestions)
	assert.Equal(t, "one1", got[0])

	seen := make(map[string]bool)
	for _, s := range got {
		assert.False(t, seen[s], "duplicate suggestion %q", s)
		seen[s] = true
		assert.False(t, resume.Has(s))
		assert.True(t, IsKeyword(s))
	}
}

func TestSuggestions_EmptyJob(t *testing.T) {
	got := Suggestions(NewSet("go"), "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEndToEndScenario(t *testing.T) {
	resumeText := "Experienced Python developer with AWS skills"
	jobText := "Looking for Python developer with Docker and AWS experience"

	resume := Extract(resumeText)
	job := Extract(jobText)

	for _, kw := range []string{"experienced", "python", "developer", "aws", "skills"} {
		assert.True(t, resume.Has(kw), "resume missing %q", kw)
	}
	for _, kw := range []string{"looking", "python", "developer", "docker", "aws", "experience"} {
		assert.True(t, job.Has(kw), "job missing %q", kw)
	}

	assert.InDelta(t, 50.0, MatchScore(resume, job), 1e-9)

	suggestions := Suggestions(resume, jobText)
	assert.Subset(t, suggestions, []string{"looking", "docker", "experience"})
	for _, kw := range []string{"python", "developer", "aws"} {
		assert.NotContains(t, suggestions, kw)
	}
}
