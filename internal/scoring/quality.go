package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-scorer/internal/types"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// AnalyzeQuality computes surface metrics over the response text: length,
// sentence structure, vocabulary richness, and the four indicator flags.
func AnalyzeQuality(response string) types.QualityMetrics {
	words := strings.Fields(response)
	sentenceCount := countSentences(response)

	unique := make(map[string]struct{}, len(words))
	for _, word := range words {
		unique[strings.Trim(strings.ToLower(word), ".,!?;:")] = struct{}{}
	}

	wordCount := len(words)
	sentenceDenom := sentenceCount
	if sentenceDenom < 1 {
		sentenceDenom = 1
	}
	wordDenom := wordCount
	if wordDenom < 1 {
		wordDenom = 1
	}

	responseLower := strings.ToLower(response)

	return types.QualityMetrics{
		WordCount:           wordCount,
		SentenceCount:       sentenceCount,
		AvgSentenceLength:   float64(wordCount) / float64(sentenceDenom),
		UniqueWordRatio:     float64(len(unique)) / float64(wordDenom),
		HasExamples:         containsAny(responseLower, indicatorPhrases(indicatorExamples)),
		HasMetrics:          containsAny(responseLower, indicatorPhrases(indicatorMetrics)),
		ShowsLeadership:     containsAny(responseLower, indicatorPhrases(indicatorLeadership)),
		ShowsProblemSolving: containsAny(responseLower, indicatorPhrases(indicatorProblemSolving)),
	}
}

func countSentences(text string) int {
	count := 0
	for _, part := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}
