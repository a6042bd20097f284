// Package types provides type definitions for structured data used throughout the interview-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Improvement trend classifications over the ordered response sequence.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// Performance level labels shared by category breakdowns and insights.
const (
	PerformanceExcellent    = "excellent"
	PerformanceGood         = "good"
	PerformanceAverage      = "average"
	PerformanceBelowAverage = "below_average"
)

// ScoreStatistics represents summary statistics over one score dimension
type ScoreStatistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_deviation"`
	Min    float64 `json:"min_score"`
	Max    float64 `json:"max_score"`
	Range  float64 `json:"score_range"`
}

// CategoryPerformance represents aggregate performance within one question category
type CategoryPerformance struct {
	AverageScore     float64 `json:"average_score"`
	ResponseCount    int     `json:"response_count"`
	PerformanceLevel string  `json:"performance_level"`
}

// AggregateReport is the session-level reduction of all per-response
// evaluations. It is a pure function of the response list: recomputing it on
// the same frozen list yields the same report.
type AggregateReport struct {
	OverallStatistics       ScoreStatistics                `json:"overall_statistics"`
	TechnicalStatistics     ScoreStatistics                `json:"technical_statistics"`
	CommunicationStatistics ScoreStatistics                `json:"communication_statistics"`
	CategoryPerformance     map[string]CategoryPerformance `json:"category_performance"`
	ImprovementTrend        string                         `json:"improvement_trend"`
	PerformanceConsistency  float64                        `json:"performance_consistency"` // 0-1
	RedFlags                []string                       `json:"red_flags"`
	StandoutIndicators      []string                       `json:"standout_indicators"`
	Recommendation          string                         `json:"recommendation"`
	ResponseCount           int                            `json:"response_count"`
}

// InterviewInsights represents actionable conclusions drawn from an AggregateReport
type InterviewInsights struct {
	PerformanceLevel     string   `json:"performance_level"`
	KeyInsights          []string `json:"key_insights"`
	HiringRecommendation string   `json:"hiring_recommendation"`
	DevelopmentAreas     []string `json:"development_areas"`
	InterviewQuality     string   `json:"interview_quality_assessment"`
	ConfidenceLevel      float64  `json:"confidence_level"` // 0-1
}
