package scoring

import (
	"math"
	"time"

	"github.com/jonathan/interview-scorer/internal/types"
)

// Weights for blending external and rule-based overall scores. The external
// model sees full natural language; the rule-based component bounds its
// influence and provides a sanity check.
const (
	externalWeight  = 0.7
	ruleBasedWeight = 0.3
)

// maxListedFindings caps the strengths and improvements carried onto the
// final evaluation.
const maxListedFindings = 3

// Evaluate produces the comprehensive evaluation for one response.
// It is a pure computation. When external is nil the evaluator runs in
// degraded mode: a deterministic fallback synthesis stands in for the model
// and UsedFallback is set so downstream consumers can discount confidence.
func Evaluate(question, response, category string, external *types.ExternalEvaluation) types.ComprehensiveEvaluation {
	rules := RuleScores(response)
	quality := AnalyzeQuality(response)
	depth := AssessDepth(response)

	usedFallback := external == nil
	var ext types.ExternalEvaluation
	if external != nil {
		ext = *external
	} else {
		ext = FallbackEvaluation(response)
	}

	consistency := clamp(1-math.Abs(ext.OverallScore-rules.OverallScore)/10, 0, 1)

	return types.ComprehensiveEvaluation{
		Question: question,
		Response: response,
		Category: category,

		External:  ext,
		RuleBased: rules,
		Quality:   quality,
		Depth:     depth,

		FinalOverallScore:   clamp(externalWeight*ext.OverallScore+ruleBasedWeight*rules.OverallScore, 1, 10),
		FinalTechnicalDepth: math.Max(ext.TechnicalDepth, depth.Score),
		FinalCommunication:  ext.CommunicationClarity,

		ConsistencyScore:     consistency,
		EvaluationConfidence: confidenceLabel(consistency),
		UsedFallback:         usedFallback,

		Strengths:     capList(ext.Strengths, maxListedFindings),
		Improvements:  capList(ext.Improvements, maxListedFindings),
		BriefFeedback: ext.BriefFeedback,
		EvaluatedAt:   time.Now().UTC(),
	}
}

func confidenceLabel(consistency float64) string {
	switch {
	case consistency >= 0.8:
		return types.ConfidenceHigh
	case consistency >= 0.6:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

func capList(values []string, limit int) []string {
	if len(values) <= limit {
		return values
	}
	return values[:limit]
}
