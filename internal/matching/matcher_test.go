package matching

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-scorer/internal/embedding"
	"github.com/jonathan/interview-scorer/internal/types"
)

// fixedEmbedder returns canned vectors: an exact per-text vector when mapped,
// otherwise the base vector. failOn simulates a provider outage for texts
// containing that substring.
type fixedEmbedder struct {
	vectors map[string][]float32
	base    []float32
	failOn  string
}

func (f *fixedEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return nil, &embedding.ProviderError{Model: "test-model", Message: "provider down"}
	}
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return f.base, nil
}

func (f *fixedEmbedder) ModelID() string {
	return "test-model"
}

func TestProfileText_FixedOrderAndSorting(t *testing.T) {
	candidate := types.CandidateRecord{
		Skills:        []string{"python", "aws"},
		Organizations: []string{"IBM", "Google"},
		RawText:       "Built data pipelines.",
	}

	text := ProfileText(candidate)

	assert.Equal(t, "Skills: aws, python. Worked at: Google, IBM. Built data pipelines.", text)
}

func TestProfileText_OmitsEmptySections(t *testing.T) {
	candidate := types.CandidateRecord{
		Skills: []string{"go"},
	}

	assert.Equal(t, "Skills: go.", ProfileText(candidate))
	assert.Equal(t, "", ProfileText(types.CandidateRecord{}))
}

func TestProfileText_TruncatesRawText(t *testing.T) {
	candidate := types.CandidateRecord{
		RawText: strings.Repeat("a", types.RawTextLimit+200),
	}

	text := ProfileText(candidate)

	assert.Len(t, text, types.RawTextLimit)
}

func TestProfileText_Deterministic(t *testing.T) {
	candidate := types.CandidateRecord{
		Skills:        []string{"kubernetes", "go", "terraform"},
		Organizations: []string{"Acme", "Initech"},
	}

	assert.Equal(t, ProfileText(candidate), ProfileText(candidate))
}

func TestComputeMatch_BlendsSemanticAndSkillOverlap(t *testing.T) {
	// Identical vectors for every text: cosine similarity is exactly 1.
	matcher := NewMatcher(&fixedEmbedder{base: []float32{0.5, 0.5, 0.1}})

	candidate := types.CandidateRecord{Skills: []string{"python", "aws"}}
	result, err := matcher.ComputeMatch(context.Background(), candidate, "We need python developers")
	require.NoError(t, err)

	assert.True(t, result.Computed)
	assert.InDelta(t, 100.0, result.SemanticSimilarity, 0.001)
	assert.InDelta(t, 50.0, result.SkillMatchPercentage, 0.001)
	// 0.7*100 + 0.3*50
	assert.InDelta(t, 85.0, result.OverallScore, 0.001)
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, 2, result.TotalSkills)
	assert.Equal(t, 1, result.MatchedSkillsCount)
}

func TestComputeMatch_SkillMatchIsCaseInsensitive(t *testing.T) {
	matcher := NewMatcher(&fixedEmbedder{base: []float32{1, 0}})

	candidate := types.CandidateRecord{Skills: []string{"Python", "AWS"}}
	result, err := matcher.ComputeMatch(context.Background(), candidate, "Looking for PYTHON and aws experience")
	require.NoError(t, err)

	assert.InDelta(t, 100.0, result.SkillMatchPercentage, 0.001)
	assert.Equal(t, []string{"Python", "AWS"}, result.MatchedSkills)
}

func TestComputeMatch_NegativeSimilarityClampsToZero(t *testing.T) {
	profile := ProfileText(types.CandidateRecord{Skills: []string{"python"}})
	matcher := NewMatcher(&fixedEmbedder{
		vectors: map[string][]float32{
			profile:          {1, 0},
			"golang service": {-1, 0},
		},
	})

	result, err := matcher.ComputeMatch(context.Background(), types.CandidateRecord{Skills: []string{"python"}}, "golang service")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.SemanticSimilarity)
	assert.Equal(t, 0.0, result.SkillMatchPercentage)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.True(t, result.Computed)
}

func TestComputeMatch_EmptySkills(t *testing.T) {
	matcher := NewMatcher(&fixedEmbedder{base: []float32{1, 1}})

	result, err := matcher.ComputeMatch(context.Background(), types.CandidateRecord{}, "any job")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.SkillMatchPercentage)
	assert.Equal(t, 0, result.TotalSkills)
	assert.Empty(t, result.MatchedSkills)
	// Overall falls back to the semantic component alone.
	assert.InDelta(t, 70.0, result.OverallScore, 0.001)
}

func TestComputeMatch_ProviderFailurePropagates(t *testing.T) {
	matcher := NewMatcher(&fixedEmbedder{failOn: "Skills:"})

	result, err := matcher.ComputeMatch(context.Background(), types.CandidateRecord{Skills: []string{"go"}}, "job text")
	require.Error(t, err)

	var compErr *ComputationError
	require.True(t, errors.As(err, &compErr))
	assert.Equal(t, "profile embedding", compErr.Stage)

	var provErr *embedding.ProviderError
	assert.True(t, errors.As(err, &provErr))

	assert.False(t, result.Computed)
	assert.Equal(t, 0.0, result.OverallScore)
}

func TestComputeMatch_Deterministic(t *testing.T) {
	matcher := NewMatcher(&fixedEmbedder{base: []float32{0.3, 0.9, 0.2}})
	candidate := types.CandidateRecord{Skills: []string{"go", "sql"}, Organizations: []string{"Acme"}}

	first, err := matcher.ComputeMatch(context.Background(), candidate, "go backend role with sql")
	require.NoError(t, err)
	second, err := matcher.ComputeMatch(context.Background(), candidate, "go backend role with sql")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRankCandidates_SortsByOverallScore(t *testing.T) {
	// Same vector everywhere: semantic is 100 for everyone, ranking is
	// decided by skill overlap.
	matcher := NewMatcher(&fixedEmbedder{base: []float32{1, 2, 3}})

	candidates := []types.CandidateRecord{
		{Name: "no-overlap", Skills: []string{"cobol"}},
		{Name: "full-overlap", Skills: []string{"go"}},
		{Name: "half-overlap", Skills: []string{"go", "rust"}},
	}

	ranked, err := matcher.RankCandidates(context.Background(), candidates, "go and python shop")
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "full-overlap", ranked[0].Candidate.Name)
	assert.Equal(t, "half-overlap", ranked[1].Candidate.Name)
	assert.Equal(t, "no-overlap", ranked[2].Candidate.Name)
	assert.True(t, ranked[0].Match.OverallScore >= ranked[1].Match.OverallScore)
	assert.True(t, ranked[1].Match.OverallScore >= ranked[2].Match.OverallScore)
}

func TestRankCandidates_FailureAbortsBatch(t *testing.T) {
	matcher := NewMatcher(&fixedEmbedder{failOn: "unembeddable"})

	candidates := []types.CandidateRecord{
		{Name: "fine", Skills: []string{"go"}},
		{Name: "broken", Skills: []string{"unembeddable"}},
	}

	ranked, err := matcher.RankCandidates(context.Background(), candidates, "job text")
	require.Error(t, err)
	assert.Nil(t, ranked)

	var compErr *ComputationError
	assert.True(t, errors.As(err, &compErr))
}

func TestCosineSimilarity_Basics(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 0.001)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 0.001)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 0.001)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{}, []float32{}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
