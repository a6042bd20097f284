// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/interview-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs a human-readable summary of a parsed candidate record.
func (p *Printer) PrintCandidate(candidate *types.CandidateRecord) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	if candidate.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", candidate.Name))
	}
	if candidate.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", candidate.Email))
	}

	if len(candidate.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(candidate.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", candidate.Skills[i]))
		}
		if len(candidate.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(candidate.Skills)-maxItemsToShow))
		}
	}

	if len(candidate.Organizations) > 0 {
		sb.WriteString("\nOrganizations:\n")
		count := min(len(candidate.Organizations), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", candidate.Organizations[i]))
		}
		if len(candidate.Organizations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(candidate.Organizations)-3))
		}
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the candidate-to-job match breakdown.
func (p *Printer) PrintMatchResult(match *types.MatchResult) {
	if match == nil {
		return
	}
	if !match.Computed {
		p.printBox("JOB MATCH", "Match not computed\n(missing candidate record or job description)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall match:       %5.1f%%\n", match.OverallScore))
	sb.WriteString(fmt.Sprintf("Semantic similarity: %5.1f%%\n", match.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Skill coverage:      %5.1f%%  (%d of %d)\n",
		match.SkillMatchPercentage, match.MatchedSkillsCount, match.TotalSkills))

	if len(match.MatchedSkills) > 0 {
		sb.WriteString("\nMatched skills:\n")
		count := min(len(match.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", match.MatchedSkills[i]))
		}
		if len(match.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.MatchedSkills)-maxItemsToShow))
		}
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the score breakdown for one evaluated response.
func (p *Printer) PrintEvaluation(evaluation *types.ComprehensiveEvaluation) {
	if evaluation == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final score:    %.1f/10\n", evaluation.FinalOverallScore))
	sb.WriteString(fmt.Sprintf("Tech depth:     %.1f/5\n", evaluation.FinalTechnicalDepth))
	sb.WriteString(fmt.Sprintf("Communication:  %.1f/5\n", evaluation.FinalCommunication))
	sb.WriteString(fmt.Sprintf("Confidence:     %s (consistency %.2f)\n",
		evaluation.EvaluationConfidence, evaluation.ConsistencyScore))
	if evaluation.UsedFallback {
		sb.WriteString("Mode:           heuristic fallback\n")
	}

	if len(evaluation.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range evaluation.Strengths {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  + %s\n", s))
		}
	}
	if len(evaluation.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		for _, s := range evaluation.Improvements {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", s))
		}
	}

	title := "RESPONSE EVALUATION"
	if evaluation.Category != "" {
		title = fmt.Sprintf("RESPONSE EVALUATION (%s)", evaluation.Category)
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAggregateReport outputs session-level score statistics.
func (p *Printer) PrintAggregateReport(report *types.AggregateReport) {
	if report == nil || report.ResponseCount == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Responses:      %d\n", report.ResponseCount))
	sb.WriteString(fmt.Sprintf("Overall:        %.1f  (median %.1f, σ %.2f)\n",
		report.OverallStatistics.Mean, report.OverallStatistics.Median, report.OverallStatistics.StdDev))
	sb.WriteString(fmt.Sprintf("Technical:      %.1f\n", report.TechnicalStatistics.Mean))
	sb.WriteString(fmt.Sprintf("Communication:  %.1f\n", report.CommunicationStatistics.Mean))
	sb.WriteString(fmt.Sprintf("Trend:          %s\n", report.ImprovementTrend))
	sb.WriteString(fmt.Sprintf("Consistency:    %.2f\n", report.PerformanceConsistency))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", report.Recommendation))

	if len(report.CategoryPerformance) > 0 {
		sb.WriteString("\nBy category:\n")
		categories := make([]string, 0, len(report.CategoryPerformance))
		for category := range report.CategoryPerformance {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			perf := report.CategoryPerformance[category]
			sb.WriteString(fmt.Sprintf("  %-16s %.1f (%s, n=%d)\n",
				category, perf.AverageScore, perf.PerformanceLevel, perf.ResponseCount))
		}
	}

	if len(report.RedFlags) > 0 {
		sb.WriteString("\nRed flags:\n")
		for _, flag := range report.RedFlags {
			if len(flag) > 50 {
				flag = flag[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", flag))
		}
	}
	if len(report.StandoutIndicators) > 0 {
		sb.WriteString("\nStandout:\n")
		for _, indicator := range report.StandoutIndicators {
			if len(indicator) > 50 {
				indicator = indicator[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ★ %s\n", indicator))
		}
	}

	p.printBox("AGGREGATE SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs the actionable conclusions drawn from a report.
func (p *Printer) PrintInsights(insights *types.InterviewInsights) {
	if insights == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Performance:  %s\n", insights.PerformanceLevel))
	sb.WriteString(fmt.Sprintf("Hiring call:  %s\n", insights.HiringRecommendation))
	sb.WriteString(fmt.Sprintf("Quality:      %s\n", insights.InterviewQuality))
	sb.WriteString(fmt.Sprintf("Confidence:   %.2f\n", insights.ConfidenceLevel))

	if len(insights.KeyInsights) > 0 {
		sb.WriteString("\nKey insights:\n")
		count := min(len(insights.KeyInsights), maxItemsToShow)
		for i := 0; i < count; i++ {
			insight := insights.KeyInsights[i]
			if len(insight) > 50 {
				insight = insight[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", insight))
		}
	}

	if len(insights.DevelopmentAreas) > 0 {
		sb.WriteString("\nDevelopment areas:\n")
		count := min(len(insights.DevelopmentAreas), 3)
		for i := 0; i < count; i++ {
			area := insights.DevelopmentAreas[i]
			if len(area) > 50 {
				area = area[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", area))
		}
	}

	p.printBox("INTERVIEW INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}
