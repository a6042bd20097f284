package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-scorer/internal/types"
)

// fortyNeutralWords scores exactly 1.0 on the rule-based scale: zero keyword
// and indicator hits, length component 3 at forty words.
func fortyNeutralWords() string {
	return strings.TrimSpace(strings.Repeat("tulip ", 40))
}

func TestEvaluate_BlendsExternalAndRuleScores(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 9, TechnicalDepth: 3, CommunicationClarity: 4}

	eval := Evaluate("Tell me about your work.", fortyNeutralWords(), "technical", external)

	assert.InDelta(t, 1.0, eval.RuleBased.OverallScore, 1e-9)
	assert.InDelta(t, 6.6, eval.FinalOverallScore, 1e-9)
	assert.InDelta(t, 0.2, eval.ConsistencyScore, 1e-9)
	assert.False(t, eval.UsedFallback)
}

func TestEvaluate_AgreementYieldsHighConfidence(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 1}

	eval := Evaluate("q", fortyNeutralWords(), "technical", external)

	assert.InDelta(t, 1.0, eval.ConsistencyScore, 1e-9)
	assert.Equal(t, types.ConfidenceHigh, eval.EvaluationConfidence)
	assert.InDelta(t, 1.0, eval.FinalOverallScore, 1e-9)
}

func TestEvaluate_ModerateDisagreementYieldsMediumConfidence(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 4.5}

	eval := Evaluate("q", fortyNeutralWords(), "technical", external)

	assert.InDelta(t, 0.65, eval.ConsistencyScore, 1e-9)
	assert.Equal(t, types.ConfidenceMedium, eval.EvaluationConfidence)
}

func TestEvaluate_LargeDisagreementYieldsLowConfidence(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 6}

	eval := Evaluate("q", fortyNeutralWords(), "technical", external)

	// Five points apart on a ten point scale.
	assert.InDelta(t, 0.5, eval.ConsistencyScore, 1e-9)
	assert.Equal(t, types.ConfidenceLow, eval.EvaluationConfidence)
	assert.InDelta(t, 4.5, eval.FinalOverallScore, 1e-9)
}

func TestEvaluate_FinalScoreClampsAtFloor(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 1}

	// Empty response scores 1/3 on the rule side; the blend lands at 0.8.
	eval := Evaluate("q", "", "technical", external)

	assert.InDelta(t, 1.0, eval.FinalOverallScore, 1e-9)
}

func TestEvaluate_TechnicalDepthTakesRuleSideWhenHigher(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 7, TechnicalDepth: 2}

	eval := Evaluate("q", "We deploy with docker and kubernetes on aws", "technical", external)

	assert.InDelta(t, 4.5, eval.Depth.Score, 1e-9)
	assert.InDelta(t, 4.5, eval.FinalTechnicalDepth, 1e-9)
}

func TestEvaluate_TechnicalDepthTakesExternalSideWhenHigher(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 7, TechnicalDepth: 5}

	eval := Evaluate("q", fortyNeutralWords(), "technical", external)

	assert.InDelta(t, 1.0, eval.Depth.Score, 1e-9)
	assert.InDelta(t, 5.0, eval.FinalTechnicalDepth, 1e-9)
}

func TestEvaluate_CommunicationComesFromExternal(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 7, CommunicationClarity: 4}

	eval := Evaluate("q", fortyNeutralWords(), "behavioral", external)

	assert.InDelta(t, 4.0, eval.FinalCommunication, 1e-9)
}

func TestEvaluate_NilExternalUsesFallback(t *testing.T) {
	response := "For example, in my project I designed the database and api layers."

	eval := Evaluate("q", response, "technical", nil)

	assert.True(t, eval.UsedFallback)
	assert.Equal(t, FallbackEvaluation(response), eval.External)
	assert.Equal(t, []string{"Addressed the question"}, eval.Strengths)
}

func TestEvaluate_NilExternalEmptyResponseIsSafe(t *testing.T) {
	eval := Evaluate("q", "", "technical", nil)

	assert.True(t, eval.UsedFallback)
	assert.GreaterOrEqual(t, eval.FinalOverallScore, 1.0)
	assert.LessOrEqual(t, eval.FinalOverallScore, 10.0)
}

func TestEvaluate_CapsStrengthsAndImprovements(t *testing.T) {
	external := &types.ExternalEvaluation{
		OverallScore: 7,
		Strengths:    []string{"a", "b", "c", "d"},
		Improvements: []string{"w", "x", "y", "z"},
	}

	eval := Evaluate("q", fortyNeutralWords(), "technical", external)

	assert.Equal(t, []string{"a", "b", "c"}, eval.Strengths)
	assert.Equal(t, []string{"w", "x", "y"}, eval.Improvements)
}

func TestEvaluate_CarriesContextAndTimestamp(t *testing.T) {
	external := &types.ExternalEvaluation{OverallScore: 7, BriefFeedback: "Nice work."}

	before := time.Now().UTC()
	eval := Evaluate("What did you build?", "A cache.", "technical", external)

	require.Equal(t, "What did you build?", eval.Question)
	assert.Equal(t, "A cache.", eval.Response)
	assert.Equal(t, "technical", eval.Category)
	assert.Equal(t, "Nice work.", eval.BriefFeedback)
	assert.Equal(t, time.UTC, eval.EvaluatedAt.Location())
	assert.False(t, eval.EvaluatedAt.Before(before))
}
