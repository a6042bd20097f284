package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/interview-scorer/internal/types"
)

// Word counts anchoring the length score ramp: ~20 words is minimal
// competence, ~60 words earns full credit, anything longer gains nothing.
const (
	minCompetenceWords = 20
	fullCreditWords    = 40 // ramp width beyond minCompetenceWords
)

// RuleScores computes the deterministic sub-scores for a response.
// It runs on every evaluation regardless of external model availability.
func RuleScores(response string) types.RuleBasedEvaluation {
	responseLower := strings.ToLower(response)

	hits := 0
	for _, domain := range technicalDomains {
		for _, keyword := range domain.keywords {
			if strings.Contains(responseLower, keyword) {
				hits++
			}
		}
	}
	total := totalKeywordCount()
	if total < 1 {
		total = 1
	}
	technicalScore := math.Min(5, float64(hits)/float64(total)*10)

	qualityHits := 0
	for _, group := range qualityIndicators {
		for _, phrase := range group.phrases {
			if strings.Contains(responseLower, phrase) {
				qualityHits++
			}
		}
	}
	qualityScore := math.Min(5, float64(qualityHits))

	wordCount := len(strings.Fields(response))
	lengthScore := clamp(float64(wordCount-minCompetenceWords)/float64(fullCreditWords)*4+1, 1, 5)

	return types.RuleBasedEvaluation{
		TechnicalScore: technicalScore,
		QualityScore:   qualityScore,
		LengthScore:    lengthScore,
		OverallScore:   (technicalScore + qualityScore + lengthScore) / 3,
	}
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
