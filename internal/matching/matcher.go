// Package matching scores candidates against job descriptions by blending
// embedding similarity with explicit skill overlap.
package matching

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/interview-scorer/internal/embedding"
	"github.com/jonathan/interview-scorer/internal/types"
)

// Weights for blending the match score components
const (
	semanticWeight = 0.7
	skillWeight    = 0.3
)

// ComputationError represents a failure to compute a match score.
// Callers must not substitute a zero score for it: an uncomputed match and a
// genuine poor match have to stay distinguishable.
type ComputationError struct {
	Stage string
	Cause error
}

func (e *ComputationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("match computation failed at %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("match computation failed at %s", e.Stage)
}

func (e *ComputationError) Unwrap() error {
	return e.Cause
}

// Matcher computes candidate/job match scores.
type Matcher struct {
	embedder embedding.Embedder
}

// NewMatcher creates a Matcher on top of the given embedder. Wrapping the
// embedder in an embedding.Cache keeps repeat comparisons from re-embedding
// identical text.
func NewMatcher(embedder embedding.Embedder) *Matcher {
	return &Matcher{embedder: embedder}
}

// ComputeMatch scores candidate against jobDescription.
func (m *Matcher) ComputeMatch(ctx context.Context, candidate types.CandidateRecord, jobDescription string) (types.MatchResult, error) {
	profileVec, err := m.embedder.Embed(ctx, ProfileText(candidate))
	if err != nil {
		return NotComputed(), &ComputationError{Stage: "profile embedding", Cause: err}
	}

	jobVec, err := m.embedder.Embed(ctx, jobDescription)
	if err != nil {
		return NotComputed(), &ComputationError{Stage: "job embedding", Cause: err}
	}

	semantic := clamp(cosineSimilarity(profileVec, jobVec)*100, 0, 100)

	matched := matchSkills(candidate.Skills, jobDescription)
	totalSkills := len(candidate.Skills)
	denominator := totalSkills
	if denominator < 1 {
		denominator = 1
	}
	skillPct := float64(len(matched)) / float64(denominator) * 100

	overall := clamp(semanticWeight*semantic+skillWeight*skillPct, 0, 100)

	return types.MatchResult{
		OverallScore:         overall,
		SemanticSimilarity:   semantic,
		SkillMatchPercentage: skillPct,
		MatchedSkills:        matched,
		TotalSkills:          totalSkills,
		MatchedSkillsCount:   len(matched),
		Computed:             true,
	}, nil
}

// NotComputed returns the MatchResult used before a match has been computed.
// Computed=false distinguishes it from a genuine all-zero score.
func NotComputed() types.MatchResult {
	return types.MatchResult{
		MatchedSkills: []string{},
	}
}

// matchSkills returns the candidate skills that appear, case-insensitively,
// as substrings of the job description. Order follows the input skills.
func matchSkills(skills []string, jobDescription string) []string {
	jobLower := strings.ToLower(jobDescription)

	matched := make([]string, 0)
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		if strings.Contains(jobLower, strings.ToLower(trimmed)) {
			matched = append(matched, skill)
		}
	}

	return matched
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths or zero-magnitude vectors yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
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

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
