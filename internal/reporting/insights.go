package reporting

import (
	"math"

	"github.com/jonathan/interview-scorer/internal/types"
)

// Development-area thresholds on the per-dimension means.
const (
	weakTechnicalMean     = 3.0
	weakCommunicationMean = 3.0
	weakConsistency       = 0.6
)

// Insights draws actionable conclusions from an aggregate report: a
// performance summary, development areas, a read on how reliable the
// interview data is, and an overall confidence in those conclusions.
func Insights(report types.AggregateReport) types.InterviewInsights {
	avg := report.OverallStatistics.Mean
	consistency := report.PerformanceConsistency

	return types.InterviewInsights{
		PerformanceLevel:     performanceLabel(avg),
		KeyInsights:          keyInsights(avg, consistency),
		HiringRecommendation: Recommend(avg, consistency),
		DevelopmentAreas:     developmentAreas(report),
		InterviewQuality:     interviewQuality(report.ResponseCount, consistency),
		ConfidenceLevel:      confidenceLevel(report.ResponseCount, consistency),
	}
}

func keyInsights(avg, consistency float64) []string {
	insights := []string{}

	switch {
	case avg >= 8:
		insights = append(insights, "Consistently strong performance across all areas")
	case avg >= 6:
		insights = append(insights, "Solid overall performance with some standout responses")
	case avg >= 4:
		insights = append(insights, "Mixed performance - shows potential but needs development")
	default:
		insights = append(insights, "Performance below expectations - significant development needed")
	}

	switch {
	case consistency >= 0.8:
		insights = append(insights, "Highly consistent response quality")
	case consistency >= 0.6:
		insights = append(insights, "Generally consistent with occasional variations")
	default:
		insights = append(insights, "Inconsistent response quality - may indicate nervousness or knowledge gaps")
	}

	return insights
}

func developmentAreas(report types.AggregateReport) []string {
	areas := []string{}
	if report.TechnicalStatistics.Mean < weakTechnicalMean {
		areas = append(areas, "Technical skills and knowledge")
	}
	if report.CommunicationStatistics.Mean < weakCommunicationMean {
		areas = append(areas, "Communication and articulation")
	}
	if report.PerformanceConsistency < weakConsistency {
		areas = append(areas, "Consistency and confidence in responses")
	}
	return areas
}

func interviewQuality(responseCount int, consistency float64) string {
	switch {
	case responseCount >= 5 && consistency >= 0.7:
		return "High quality interview with reliable data"
	case responseCount >= 3 && consistency >= 0.5:
		return "Good quality interview with actionable insights"
	default:
		return "Limited interview data - consider additional assessment"
	}
}

// confidenceLevel weighs consistency against how much evidence the interview
// produced; ten responses saturate the sample-size contribution.
func confidenceLevel(responseCount int, consistency float64) float64 {
	sampleWeight := math.Min(0.3, float64(responseCount)/10*0.3)
	return math.Min(1, consistency*0.7+sampleWeight)
}
