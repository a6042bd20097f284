// Package types provides type definitions for structured data used throughout the interview-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult represents the outcome of matching a candidate record against a job description
type MatchResult struct {
	OverallScore         float64  `json:"overall_score"`
	SemanticSimilarity   float64  `json:"semantic_similarity"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
	MatchedSkills        []string `json:"matched_skills"`
	TotalSkills          int      `json:"total_skills"`
	MatchedSkillsCount   int      `json:"matched_skills_count"`
	// Computed distinguishes a genuine zero match from "matching never ran"
	// (missing candidate record or missing job description).
	Computed bool `json:"computed"`
}

// RankedCandidate pairs a candidate with its match result for batch ranking
type RankedCandidate struct {
	Candidate CandidateRecord `json:"candidate"`
	Match     MatchResult     `json:"match"`
}
