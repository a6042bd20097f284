package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeQuality_Counts(t *testing.T) {
	metrics := AnalyzeQuality("I built an API. It was fast! Really fast.")

	assert.Equal(t, 9, metrics.WordCount)
	assert.Equal(t, 3, metrics.SentenceCount)
	assert.InDelta(t, 3.0, metrics.AvgSentenceLength, 0.001)
	// "fast" repeats, every other word is unique: 8 distinct of 9.
	assert.InDelta(t, 8.0/9.0, metrics.UniqueWordRatio, 0.001)
}

func TestAnalyzeQuality_PunctuationDoesNotSplitWords(t *testing.T) {
	metrics := AnalyzeQuality("Yes. Yes! Yes?")

	assert.Equal(t, 3, metrics.WordCount)
	assert.Equal(t, 3, metrics.SentenceCount)
	// All three collapse to the same word once punctuation is stripped.
	assert.InDelta(t, 1.0/3.0, metrics.UniqueWordRatio, 0.001)
}

func TestAnalyzeQuality_IndicatorFlags(t *testing.T) {
	metrics := AnalyzeQuality(
		"For example, we increased by 40% after I led a team that solved the issue.")

	assert.True(t, metrics.HasExamples)
	assert.True(t, metrics.HasMetrics)
	assert.True(t, metrics.ShowsLeadership)
	assert.True(t, metrics.ShowsProblemSolving)
}

func TestAnalyzeQuality_FlagsAbsent(t *testing.T) {
	metrics := AnalyzeQuality("It went fine overall.")

	assert.False(t, metrics.HasExamples)
	assert.False(t, metrics.HasMetrics)
	assert.False(t, metrics.ShowsLeadership)
	assert.False(t, metrics.ShowsProblemSolving)
}

func TestAnalyzeQuality_EmptyResponse(t *testing.T) {
	metrics := AnalyzeQuality("")

	assert.Equal(t, 0, metrics.WordCount)
	assert.Equal(t, 0, metrics.SentenceCount)
	assert.Equal(t, 0.0, metrics.AvgSentenceLength)
	assert.Equal(t, 0.0, metrics.UniqueWordRatio)
	assert.False(t, metrics.HasExamples)
}

func TestAnalyzeQuality_CaseInsensitiveFlags(t *testing.T) {
	metrics := AnalyzeQuality("FOR EXAMPLE, I MENTORED people.")

	assert.True(t, metrics.HasExamples)
	assert.True(t, metrics.ShowsLeadership)
}
