package scoring

import (
	"strings"

	"github.com/jonathan/interview-scorer/internal/types"
)

// GeneralDomain labels responses with no technical keyword hits.
const GeneralDomain = "general"

// maxKeywordsReported caps the keyword list carried on a depth assessment.
const maxKeywordsReported = 10

// AssessDepth scores technical depth and names the closest domain.
// Ties between domains resolve to the one listed first in the taxonomy.
func AssessDepth(response string) types.TechnicalDepth {
	responseLower := strings.ToLower(response)

	bestDomain := GeneralDomain
	bestHits := 0
	keywordsFound := make([]string, 0)

	for _, domain := range technicalDomains {
		hits := 0
		for _, keyword := range domain.keywords {
			if strings.Contains(responseLower, keyword) {
				hits++
				keywordsFound = append(keywordsFound, keyword)
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestDomain = domain.name
		}
	}

	if len(keywordsFound) > maxKeywordsReported {
		keywordsFound = keywordsFound[:maxKeywordsReported]
	}

	return types.TechnicalDepth{
		Score:           clamp(float64(bestHits)*1.5, 1, 5),
		DomainRelevance: bestDomain,
		KeywordsFound:   keywordsFound,
	}
}
