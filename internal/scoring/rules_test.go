package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleScores_TechnicalKeywordHits(t *testing.T) {
	// docker, kubernetes, git: 3 hits out of the full taxonomy.
	result := RuleScores("I used docker and kubernetes with git")

	expected := 3.0 / float64(totalKeywordCount()) * 10
	assert.InDelta(t, expected, result.TechnicalScore, 0.001)
}

func TestRuleScores_TechnicalScoreCapsAtFive(t *testing.T) {
	// Cram in enough keywords that the raw ratio would exceed the cap.
	var sb strings.Builder
	for _, domain := range technicalDomains {
		for _, keyword := range domain.keywords {
			sb.WriteString(keyword)
			sb.WriteString(" ")
		}
	}

	result := RuleScores(sb.String())

	assert.Equal(t, 5.0, result.TechnicalScore)
}

func TestRuleScores_QualityIndicators(t *testing.T) {
	// "for example" and "mentored": exactly two indicator hits.
	result := RuleScores("For example, I mentored two junior engineers last year.")

	assert.Equal(t, 2.0, result.QualityScore)
}

func TestRuleScores_QualityIndicatorInMultipleGroups(t *testing.T) {
	// "improved" is both a metrics and a problem-solving indicator, so a
	// single occurrence counts twice.
	result := RuleScores("We improved the pipeline.")

	assert.Equal(t, 2.0, result.QualityScore)
}

func TestRuleScores_LengthRamp(t *testing.T) {
	twenty := strings.TrimSpace(strings.Repeat("word ", 20))
	forty := strings.TrimSpace(strings.Repeat("word ", 40))
	sixty := strings.TrimSpace(strings.Repeat("word ", 60))
	hundred := strings.TrimSpace(strings.Repeat("word ", 100))

	assert.InDelta(t, 1.0, RuleScores(twenty).LengthScore, 0.001)
	assert.InDelta(t, 3.0, RuleScores(forty).LengthScore, 0.001)
	assert.InDelta(t, 5.0, RuleScores(sixty).LengthScore, 0.001)
	// Verbosity beyond full credit gains nothing.
	assert.InDelta(t, 5.0, RuleScores(hundred).LengthScore, 0.001)
}

func TestRuleScores_LengthScoreIsMonotonic(t *testing.T) {
	previous := 0.0
	for wordCount := 10; wordCount <= 60; wordCount++ {
		response := strings.TrimSpace(strings.Repeat("word ", wordCount))
		score := RuleScores(response).LengthScore

		assert.GreaterOrEqual(t, score, previous, "length score regressed at %d words", wordCount)
		previous = score
	}
}

func TestRuleScores_EmptyResponse(t *testing.T) {
	result := RuleScores("")

	assert.Equal(t, 0.0, result.TechnicalScore)
	assert.Equal(t, 0.0, result.QualityScore)
	assert.Equal(t, 1.0, result.LengthScore)
	assert.InDelta(t, 1.0/3.0, result.OverallScore, 0.001)
}

func TestRuleScores_OverallIsMeanOfComponents(t *testing.T) {
	result := RuleScores("For example, I debugged the api integration using sql and docker.")

	expected := (result.TechnicalScore + result.QualityScore + result.LengthScore) / 3
	assert.InDelta(t, expected, result.OverallScore, 0.0001)
}

func TestRuleScores_CaseInsensitive(t *testing.T) {
	lower := RuleScores("docker and kubernetes, for example")
	upper := RuleScores("DOCKER and KUBERNETES, FOR EXAMPLE")

	assert.Equal(t, lower, upper)
}
