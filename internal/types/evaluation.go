// Package types provides type definitions for structured data used throughout the interview-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Evaluation confidence levels derived from the consistency score.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ExternalEvaluation represents the structured evaluation returned by the
// external model. Every numeric field is clamped into its declared range on
// receipt; missing or malformed fields take the documented defaults.
type ExternalEvaluation struct {
	OverallScore           float64  `json:"overall_score"`            // 1-10, default 5
	TechnicalDepth         float64  `json:"technical_depth"`          // 1-5, default 3
	CommunicationClarity   float64  `json:"communication_clarity"`    // 1-5, default 3
	RelevanceToRole        float64  `json:"relevance_to_role"`        // 1-5, default 3
	SpecificExamples       float64  `json:"specific_examples"`        // 1-5, default 2
	ProblemSolvingApproach float64  `json:"problem_solving_approach"` // 1-5, default 3
	Strengths              []string `json:"strengths"`                // at most 3
	Improvements           []string `json:"improvements"`             // at most 3
	TechnicalKeywordsUsed  []string `json:"technical_keywords_used"`  // at most 5
	DemonstratesExperience bool     `json:"demonstrates_experience"`
	ShowsLeadership        bool     `json:"shows_leadership"`
	MentionsMetrics        bool     `json:"mentions_metrics"`
	BriefFeedback          string   `json:"brief_feedback"`
}

// RuleBasedEvaluation represents the deterministic keyword/heuristic scores
// computed from response text, independent of any external model.
type RuleBasedEvaluation struct {
	TechnicalScore float64 `json:"technical_score"` // 0-5
	QualityScore   float64 `json:"quality_score"`   // 0-5
	LengthScore    float64 `json:"length_score"`    // 1-5
	OverallScore   float64 `json:"overall_score"`   // mean of the three
}

// QualityMetrics represents qualitative measurements of a single response
type QualityMetrics struct {
	WordCount           int     `json:"word_count"`
	SentenceCount       int     `json:"sentence_count"`
	AvgSentenceLength   float64 `json:"avg_sentence_length"`
	UniqueWordRatio     float64 `json:"unique_word_ratio"`
	HasExamples         bool    `json:"has_examples"`
	HasMetrics          bool    `json:"has_metrics"`
	ShowsLeadership     bool    `json:"shows_leadership"`
	ShowsProblemSolving bool    `json:"shows_problem_solving"`
}

// TechnicalDepth represents the keyword-based depth assessment of a response
type TechnicalDepth struct {
	Score           float64  `json:"score"`            // 1-5
	DomainRelevance string   `json:"domain_relevance"` // best-matching domain, or "general"
	KeywordsFound   []string `json:"keywords_found"`   // at most 10
}

// ComprehensiveEvaluation is the reconciliation of the external and rule-based
// evaluations for one submitted response. It is created once per response and
// never mutated afterward.
type ComprehensiveEvaluation struct {
	Question string `json:"question"`
	Response string `json:"response"`
	Category string `json:"category"`

	External  ExternalEvaluation  `json:"external_evaluation"`
	RuleBased RuleBasedEvaluation `json:"rule_based_evaluation"`
	Quality   QualityMetrics      `json:"quality_metrics"`
	Depth     TechnicalDepth      `json:"technical_depth_assessment"`

	FinalOverallScore   float64 `json:"final_overall_score"`   // 1-10
	FinalTechnicalDepth float64 `json:"final_technical_depth"` // 1-5
	FinalCommunication  float64 `json:"final_communication"`   // 1-5

	ConsistencyScore     float64 `json:"consistency_score"`     // 0-1
	EvaluationConfidence string  `json:"evaluation_confidence"` // high | medium | low
	// UsedFallback marks the degraded mode where the external model was
	// absent or malformed and a deterministic heuristic stood in for it.
	UsedFallback bool `json:"used_fallback"`

	Strengths     []string  `json:"strengths"`
	Improvements  []string  `json:"improvements"`
	BriefFeedback string    `json:"brief_feedback,omitempty"`
	EvaluatedAt   time.Time `json:"evaluated_at"`
}
