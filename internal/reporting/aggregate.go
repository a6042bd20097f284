// Package reporting reduces per-response evaluations into interview-level
// statistics, risk signals, and a hiring recommendation.
package reporting

import (
	"github.com/jonathan/interview-scorer/internal/types"
)

// Response-count fractions that trigger red flags.
const (
	briefResponseWords    = 15
	briefResponseFraction = 0.4
	lowScoreThreshold     = 4.0
	lowScoreFraction      = 0.5
	noExamplesFraction    = 0.7
)

// Response-count fractions that trigger standout indicators.
const (
	excellentScoreThreshold = 8.0
	excellentFraction       = 0.4
	deepTechnicalThreshold  = 4.0
	deepTechnicalFraction   = 0.3
	leadershipMinResponses  = 2
)

// maxConsistencyStdDev is the assumed practical ceiling for the standard
// deviation of scores on a 1-10 scale; it anchors the consistency rating.
const maxConsistencyStdDev = 4.5

// noResponsesFlag marks an aggregate computed from zero responses.
const noResponsesFlag = "No interview responses to evaluate"

// Aggregate reduces a frozen response list to session-level statistics.
// It is a pure function: recomputing on the same list yields the same report.
// Empty input returns the zeroed report flagged with noResponsesFlag rather
// than an error.
func Aggregate(responses []types.ComprehensiveEvaluation) types.AggregateReport {
	if len(responses) == 0 {
		return types.AggregateReport{
			CategoryPerformance: map[string]types.CategoryPerformance{},
			ImprovementTrend:    types.TrendInsufficientData,
			RedFlags:            []string{noResponsesFlag},
			StandoutIndicators:  []string{},
		}
	}

	overall := make([]float64, len(responses))
	technical := make([]float64, len(responses))
	communication := make([]float64, len(responses))
	for i, r := range responses {
		overall[i] = r.FinalOverallScore
		technical[i] = r.FinalTechnicalDepth
		communication[i] = r.FinalCommunication
	}

	consistency := consistencyRating(overall)

	return types.AggregateReport{
		OverallStatistics:       statisticsFor(overall),
		TechnicalStatistics:     statisticsFor(technical),
		CommunicationStatistics: statisticsFor(communication),
		CategoryPerformance:     categoryBreakdown(responses),
		ImprovementTrend:        improvementTrend(overall),
		PerformanceConsistency:  consistency,
		RedFlags:                redFlags(responses, overall),
		StandoutIndicators:      standoutIndicators(responses, overall, technical),
		Recommendation:          Recommend(mean(overall), consistency),
		ResponseCount:           len(responses),
	}
}

// improvementTrend compares the first and second half of the ordered score
// sequence. Fewer than three responses cannot show a trend.
func improvementTrend(scores []float64) string {
	if len(scores) < 3 {
		return types.TrendInsufficientData
	}

	firstAvg := mean(scores[:len(scores)/2])
	secondAvg := mean(scores[len(scores)/2:])

	switch {
	case secondAvg > firstAvg+0.5:
		return types.TrendImproving
	case secondAvg < firstAvg-0.5:
		return types.TrendDeclining
	default:
		return types.TrendStable
	}
}

func consistencyRating(scores []float64) float64 {
	return clamp(1-stdDev(scores)/maxConsistencyStdDev, 0, 1)
}

func redFlags(responses []types.ComprehensiveEvaluation, overall []float64) []string {
	flags := []string{}
	total := float64(len(responses))

	brief := 0
	noExamples := 0
	for _, r := range responses {
		if r.Quality.WordCount < briefResponseWords {
			brief++
		}
		if !r.Quality.HasExamples {
			noExamples++
		}
	}
	low := 0
	for _, s := range overall {
		if s < lowScoreThreshold {
			low++
		}
	}

	if float64(brief) >= total*briefResponseFraction {
		flags = append(flags, "Multiple very brief responses - may indicate lack of depth")
	}
	if float64(low) >= total*lowScoreFraction {
		flags = append(flags, "Consistently low performance across multiple areas")
	}
	if float64(noExamples) >= total*noExamplesFraction {
		flags = append(flags, "Lack of specific examples or concrete experience")
	}
	return flags
}

func standoutIndicators(responses []types.ComprehensiveEvaluation, overall, technical []float64) []string {
	indicators := []string{}
	total := float64(len(responses))

	excellent := 0
	for _, s := range overall {
		if s >= excellentScoreThreshold {
			excellent++
		}
	}
	deep := 0
	for _, d := range technical {
		if d >= deepTechnicalThreshold {
			deep++
		}
	}
	leadership := 0
	for _, r := range responses {
		if r.Quality.ShowsLeadership {
			leadership++
		}
	}

	if float64(excellent) >= total*excellentFraction {
		indicators = append(indicators, "Multiple excellent responses demonstrating strong competency")
	}
	if float64(deep) >= total*deepTechnicalFraction {
		indicators = append(indicators, "Strong technical knowledge and depth")
	}
	if leadership >= leadershipMinResponses {
		indicators = append(indicators, "Demonstrates leadership experience and skills")
	}
	return indicators
}

func categoryBreakdown(responses []types.ComprehensiveEvaluation) map[string]types.CategoryPerformance {
	byCategory := make(map[string][]float64)
	for _, r := range responses {
		byCategory[r.Category] = append(byCategory[r.Category], r.FinalOverallScore)
	}

	breakdown := make(map[string]types.CategoryPerformance, len(byCategory))
	for category, scores := range byCategory {
		avg := mean(scores)
		breakdown[category] = types.CategoryPerformance{
			AverageScore:     avg,
			ResponseCount:    len(scores),
			PerformanceLevel: performanceLabel(avg),
		}
	}
	return breakdown
}

// Recommend maps the overall mean and consistency rating to a hiring
// recommendation line. Consistency gates the two hire tiers so that an
// erratic interview cannot produce a confident hire call.
func Recommend(avgScore, consistency float64) string {
	switch {
	case avgScore >= 7.5 && consistency >= 0.7:
		return "Strong Hire - Excellent candidate with consistent performance"
	case avgScore >= 6.5 && consistency >= 0.6:
		return "Hire - Good candidate with solid performance"
	case avgScore >= 5.5:
		return "Maybe - Average candidate, consider specific role requirements"
	default:
		return "Pass - Performance below expectations for this role"
	}
}

func performanceLabel(score float64) string {
	switch {
	case score >= 8:
		return types.PerformanceExcellent
	case score >= 6:
		return types.PerformanceGood
	case score >= 4:
		return types.PerformanceAverage
	default:
		return types.PerformanceBelowAverage
	}
}
