package interview

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/interview-scorer/internal/types"
)

// SessionMetadata identifies the engagement the report covers.
type SessionMetadata struct {
	SessionID             string    `json:"session_id"`
	CandidateName         string    `json:"candidate_name"`
	Role                  string    `json:"role,omitempty"`
	InterviewDate         time.Time `json:"interview_date"`
	CompletionTime        time.Time `json:"completion_time"`
	DurationMinutes       float64   `json:"duration_minutes"`
	QuestionsAnswered     int       `json:"questions_answered"`
	TotalQuestionsPlanned int       `json:"total_questions_planned"`
	CompletionRate        float64   `json:"completion_rate"` // percent
}

// ScoreDistribution counts responses per performance band.
type ScoreDistribution struct {
	Excellent int `json:"excellent_responses"` // >=8
	Good      int `json:"good_responses"`      // [6,8)
	Average   int `json:"average_responses"`   // [4,6)
	Weak      int `json:"weak_responses"`      // <4
}

// PerformanceMetrics is the headline scorecard. ConsistencyScore here is
// range-based (1 - spread/10), a coarser signal than the aggregate report's
// deviation-based rating.
type PerformanceMetrics struct {
	OverallScore        float64           `json:"overall_score"`
	TechnicalCompetency float64           `json:"technical_competency"`
	CommunicationSkills float64           `json:"communication_skills"`
	ConsistencyScore    float64           `json:"consistency_score"`
	ScoreDistribution   ScoreDistribution `json:"score_distribution"`
	Recommendation      string            `json:"recommendation"`
	ConfidenceLevel     string            `json:"confidence_level"`
	HireProbability     float64           `json:"hire_probability"` // percent
}

// ResumeAnalysis reports what resume processing contributed to the session.
type ResumeAnalysis struct {
	ResumeProvided  bool              `json:"resume_provided"`
	Match           types.MatchResult `json:"match"`
	ExtractedSkills []string          `json:"extracted_skills"`
	WorkExperience  []string          `json:"work_experience"`
}

// CommunicationPatterns describes response length and style.
type CommunicationPatterns struct {
	AverageResponseLength float64 `json:"average_response_length"` // words
	TotalWords            int     `json:"total_words"`
	ResponseConsistency   float64 `json:"response_consistency"` // 0-1
	CommunicationStyle    string  `json:"communication_style"`
}

// TechnicalAssessment summarizes the technical-category responses.
// Assessment is set only when no technical questions were answered.
type TechnicalAssessment struct {
	QuestionsAnswered int     `json:"technical_questions_answered"`
	AverageDepth      float64 `json:"average_technical_depth"`
	DistinctKeywords  int     `json:"technical_keywords_mentioned"`
	CompetencyLevel   string  `json:"technical_competency_level,omitempty"`
	Assessment        string  `json:"assessment,omitempty"`
}

// BehavioralInsights summarizes behavioral and role-specific responses.
type BehavioralInsights struct {
	BehavioralResponses    int    `json:"behavioral_responses"`
	LeadershipIndicators   int    `json:"leadership_indicators"`
	ExperienceDemonstrated int    `json:"experience_demonstrated"`
	SoftSkillsAssessment   string `json:"soft_skills_assessment"`
}

// StandoutResponse points at a response scoring in the excellent band.
type StandoutResponse struct {
	QuestionNumber int     `json:"question_number"`
	Category       string  `json:"category"`
	Score          float64 `json:"score"`
	Highlight      string  `json:"highlight"`
}

// QualitativeAssessment carries the narrative portion of the report.
type QualitativeAssessment struct {
	TopStrengths        []string           `json:"top_strengths"`
	KeyImprovementAreas []string           `json:"key_improvement_areas"`
	StandoutResponses   []StandoutResponse `json:"standout_responses"`
	OverallImpression   string             `json:"overall_impression"`
}

// FinalAssessment is the hiring-decision section.
type FinalAssessment struct {
	FinalRecommendation      string   `json:"final_recommendation"`
	ConfidenceLevel          string   `json:"confidence_level"`
	HireProbability          float64  `json:"hire_probability"`
	KeyDecisionFactors       []string `json:"key_decision_factors"`
	RecommendedNextSteps     []string `json:"recommended_next_steps"`
	SalaryBandRecommendation string   `json:"salary_band_recommendation"`
	OnboardingFocusAreas     []string `json:"onboarding_focus_areas"`
}

// SessionReport is the complete deliverable of a finished interview.
type SessionReport struct {
	Metadata       SessionMetadata                 `json:"session_metadata"`
	Performance    PerformanceMetrics              `json:"performance_metrics"`
	ResumeAnalysis ResumeAnalysis                  `json:"resume_analysis"`
	Aggregate      types.AggregateReport           `json:"aggregate_scores"`
	Insights       types.InterviewInsights         `json:"insights"`
	Communication  CommunicationPatterns           `json:"communication_patterns"`
	Technical      TechnicalAssessment             `json:"technical_assessment"`
	Behavioral     BehavioralInsights              `json:"behavioral_insights"`
	Qualitative    QualitativeAssessment           `json:"qualitative_assessment"`
	Final          FinalAssessment                 `json:"final_assessment"`
	Responses      []types.ComprehensiveEvaluation `json:"detailed_responses"`
}

// Caps for the narrative lists.
const (
	maxTopStrengths      = 5
	maxImprovementAreas  = 3
	maxStandoutResponses = 3
	maxReportSkills      = 15
	maxReportExperience  = 8
	standoutScore        = 8.0
	highlightChars       = 100
)

func composeReport(session *Session, aggregate types.AggregateReport, insights types.InterviewInsights) *SessionReport {
	responses := session.Responses
	performance := performanceMetrics(responses)

	completedAt := session.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	return &SessionReport{
		Metadata: SessionMetadata{
			SessionID:             session.ID,
			CandidateName:         session.CandidateName,
			Role:                  session.Role,
			InterviewDate:         session.CreatedAt,
			CompletionTime:        completedAt,
			DurationMinutes:       round1(completedAt.Sub(session.CreatedAt).Minutes()),
			QuestionsAnswered:     len(responses),
			TotalQuestionsPlanned: session.TotalQuestions,
			CompletionRate:        round1(float64(len(responses)) / float64(session.TotalQuestions) * 100),
		},
		Performance:    performance,
		ResumeAnalysis: resumeAnalysis(session),
		Aggregate:      aggregate,
		Insights:       insights,
		Communication:  communicationPatterns(responses),
		Technical:      technicalAssessment(responses),
		Behavioral:     behavioralInsights(responses),
		Qualitative:    qualitativeAssessment(responses, performance),
		Final:          finalAssessment(performance, session.Match),
		Responses:      responses,
	}
}

func performanceMetrics(responses []types.ComprehensiveEvaluation) PerformanceMetrics {
	if len(responses) == 0 {
		return PerformanceMetrics{}
	}

	var overallSum, technicalSum, communicationSum float64
	minScore := responses[0].FinalOverallScore
	maxScore := responses[0].FinalOverallScore
	var distribution ScoreDistribution

	for _, r := range responses {
		score := r.FinalOverallScore
		overallSum += score
		technicalSum += r.FinalTechnicalDepth
		communicationSum += r.FinalCommunication
		minScore = math.Min(minScore, score)
		maxScore = math.Max(maxScore, score)

		switch {
		case score >= 8:
			distribution.Excellent++
		case score >= 6:
			distribution.Good++
		case score >= 4:
			distribution.Average++
		default:
			distribution.Weak++
		}
	}

	n := float64(len(responses))
	avgOverall := overallSum / n

	recommendation, confidence := hiringCall(avgOverall)

	return PerformanceMetrics{
		OverallScore:        round1(avgOverall),
		TechnicalCompetency: round1(technicalSum / n),
		CommunicationSkills: round1(communicationSum / n),
		ConsistencyScore:    round2(1 - (maxScore-minScore)/10),
		ScoreDistribution:   distribution,
		Recommendation:      recommendation,
		ConfidenceLevel:     confidence,
		HireProbability:     round1(math.Min(100, math.Max(0, (avgOverall-3)*20))),
	}
}

// hiringCall maps the average overall score to the short-form recommendation
// and how confident that call is.
func hiringCall(avgOverall float64) (recommendation, confidence string) {
	switch {
	case avgOverall >= 8:
		return "Strong Hire", "High"
	case avgOverall >= 7:
		return "Hire", "High"
	case avgOverall >= 6:
		return "Hire", "Medium"
	case avgOverall >= 5:
		return "Maybe", "Medium"
	default:
		return "Pass", "High"
	}
}

func resumeAnalysis(session *Session) ResumeAnalysis {
	analysis := ResumeAnalysis{
		ResumeProvided:  session.Candidate != nil,
		Match:           session.Match,
		ExtractedSkills: []string{},
		WorkExperience:  []string{},
	}
	if session.Candidate != nil {
		analysis.ExtractedSkills = headOf(session.Candidate.Skills, maxReportSkills)
		analysis.WorkExperience = headOf(session.Candidate.Organizations, maxReportExperience)
	}
	return analysis
}

func communicationPatterns(responses []types.ComprehensiveEvaluation) CommunicationPatterns {
	if len(responses) == 0 {
		return CommunicationPatterns{}
	}

	totalWords := 0
	minLen := responses[0].Quality.WordCount
	maxLen := responses[0].Quality.WordCount
	for _, r := range responses {
		wc := r.Quality.WordCount
		totalWords += wc
		if wc < minLen {
			minLen = wc
		}
		if wc > maxLen {
			maxLen = wc
		}
	}

	avgLength := float64(totalWords) / float64(len(responses))

	var style string
	switch {
	case avgLength > 80:
		style = "Detailed and thorough"
	case avgLength > 40:
		style = "Balanced and clear"
	case avgLength > 20:
		style = "Concise"
	default:
		style = "Brief responses"
	}

	lengthSpread := float64(maxLen - minLen)
	return CommunicationPatterns{
		AverageResponseLength: round1(avgLength),
		TotalWords:            totalWords,
		ResponseConsistency:   round2(1 - lengthSpread/math.Max(float64(maxLen), 1)),
		CommunicationStyle:    style,
	}
}

func technicalAssessment(responses []types.ComprehensiveEvaluation) TechnicalAssessment {
	var technical []types.ComprehensiveEvaluation
	for _, r := range responses {
		if r.Category == CategoryTechnical {
			technical = append(technical, r)
		}
	}
	if len(technical) == 0 {
		return TechnicalAssessment{Assessment: "No technical questions answered"}
	}

	depthSum := 0.0
	keywords := make(map[string]bool)
	for _, r := range technical {
		depthSum += r.FinalTechnicalDepth
		for _, kw := range r.External.TechnicalKeywordsUsed {
			keywords[kw] = true
		}
		for _, kw := range r.Depth.KeywordsFound {
			keywords[kw] = true
		}
	}
	avgDepth := depthSum / float64(len(technical))

	var level string
	switch {
	case avgDepth >= 4.5:
		level = "Expert"
	case avgDepth >= 3.5:
		level = "Advanced"
	case avgDepth >= 2.5:
		level = "Intermediate"
	default:
		level = "Beginner"
	}

	return TechnicalAssessment{
		QuestionsAnswered: len(technical),
		AverageDepth:      round1(avgDepth),
		DistinctKeywords:  len(keywords),
		CompetencyLevel:   level,
	}
}

func behavioralInsights(responses []types.ComprehensiveEvaluation) BehavioralInsights {
	var behavioral []types.ComprehensiveEvaluation
	for _, r := range responses {
		if r.Category == CategoryBehavioral || r.Category == CategoryRoleSpecific {
			behavioral = append(behavioral, r)
		}
	}
	if len(behavioral) == 0 {
		return BehavioralInsights{SoftSkillsAssessment: "Limited behavioral data"}
	}

	leadership := 0
	experience := 0
	for _, r := range behavioral {
		if r.Quality.ShowsLeadership {
			leadership++
		}
		if r.External.DemonstratesExperience {
			experience++
		}
	}

	var assessment string
	switch {
	case leadership >= 2 && experience >= 2:
		assessment = "Strong leadership and experience"
	case experience >= 1:
		assessment = "Good interpersonal skills"
	default:
		assessment = "Basic soft skills demonstrated"
	}

	return BehavioralInsights{
		BehavioralResponses:    len(behavioral),
		LeadershipIndicators:   leadership,
		ExperienceDemonstrated: experience,
		SoftSkillsAssessment:   assessment,
	}
}

func qualitativeAssessment(responses []types.ComprehensiveEvaluation, performance PerformanceMetrics) QualitativeAssessment {
	var strengths, improvements []string
	for _, r := range responses {
		strengths = append(strengths, r.Strengths...)
		improvements = append(improvements, r.Improvements...)
	}

	standouts := []StandoutResponse{}
	for i, r := range responses {
		if r.FinalOverallScore < standoutScore {
			continue
		}
		standouts = append(standouts, StandoutResponse{
			QuestionNumber: i + 1,
			Category:       r.Category,
			Score:          r.FinalOverallScore,
			Highlight:      truncate(r.Question, highlightChars) + "...",
		})
		if len(standouts) == maxStandoutResponses {
			break
		}
	}

	return QualitativeAssessment{
		TopStrengths:        dedupeHead(strengths, maxTopStrengths),
		KeyImprovementAreas: dedupeHead(improvements, maxImprovementAreas),
		StandoutResponses:   standouts,
		OverallImpression:   overallImpression(performance),
	}
}

func overallImpression(performance PerformanceMetrics) string {
	score := performance.OverallScore
	consistency := performance.ConsistencyScore

	switch {
	case score >= 8 && consistency >= 0.8:
		return "Exceptional candidate with consistently high performance across all areas. Demonstrates strong technical skills and excellent communication."
	case score >= 7 && consistency >= 0.7:
		return "Strong candidate with solid performance. Shows good technical competency and effective communication skills."
	case score >= 6:
		return "Competent candidate with decent performance. Has potential but may need some development in key areas."
	case score >= 4:
		return "Average candidate with mixed performance. Shows some promise but requires significant development."
	default:
		return "Candidate performance below expectations. Would need substantial development to meet role requirements."
	}
}

func finalAssessment(performance PerformanceMetrics, match types.MatchResult) FinalAssessment {
	factors := []string{
		fmt.Sprintf("Overall interview performance: %.1f/10", performance.OverallScore),
		fmt.Sprintf("Technical competency level: %.1f/5", performance.TechnicalCompetency),
		fmt.Sprintf("Communication effectiveness: %.1f/5", performance.CommunicationSkills),
	}
	if match.Computed {
		factors = append(factors, fmt.Sprintf("Resume-job alignment: %.1f%%", match.OverallScore))
	}

	var nextSteps []string
	switch performance.Recommendation {
	case "Strong Hire", "Hire":
		nextSteps = []string{
			"Proceed with reference checks",
			"Schedule final interview round",
			"Prepare job offer discussion",
		}
	case "Maybe":
		nextSteps = []string{
			"Conduct additional technical assessment",
			"Schedule follow-up interview",
			"Discuss with hiring team for consensus",
		}
	default:
		nextSteps = []string{
			"Provide constructive feedback to candidate",
			"Consider for future opportunities with development",
			"Update candidate tracking system",
		}
	}

	return FinalAssessment{
		FinalRecommendation:      performance.Recommendation,
		ConfidenceLevel:          performance.ConfidenceLevel,
		HireProbability:          performance.HireProbability,
		KeyDecisionFactors:       factors,
		RecommendedNextSteps:     nextSteps,
		SalaryBandRecommendation: salaryBand(performance.OverallScore),
		OnboardingFocusAreas:     onboardingFocus(performance),
	}
}

func salaryBand(overallScore float64) string {
	switch {
	case overallScore >= 8.5:
		return "Top of band - exceptional candidate"
	case overallScore >= 7.5:
		return "Upper band - strong performer"
	case overallScore >= 6.5:
		return "Mid band - solid contributor"
	case overallScore >= 5.5:
		return "Lower-mid band - growth potential"
	default:
		return "Entry level - requires development"
	}
}

func onboardingFocus(performance PerformanceMetrics) []string {
	var focus []string
	if performance.TechnicalCompetency < 3.5 {
		focus = append(focus, "Technical skills development and mentoring")
	}
	if performance.CommunicationSkills < 3.5 {
		focus = append(focus, "Communication and presentation skills")
	}
	if performance.ConsistencyScore < 0.6 {
		focus = append(focus, "Building confidence and consistency")
	}
	if len(focus) == 0 {
		focus = append(focus, "Standard onboarding - candidate shows strong readiness")
	}
	return focus
}

// dedupeHead keeps the first occurrence of each value, capped at n.
func dedupeHead(values []string, n int) []string {
	seen := make(map[string]bool, len(values))
	out := []string{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
