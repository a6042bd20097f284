package scoring

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jonathan/interview-scorer/internal/llm"
	"github.com/jonathan/interview-scorer/internal/types"
)

// MalformedEvaluationError indicates the external model returned something
// that cannot be read as an evaluation object. Callers recover by evaluating
// without an external evaluation; this error is never fatal to a session.
type MalformedEvaluationError struct {
	Detail string
}

func (e *MalformedEvaluationError) Error() string {
	return fmt.Sprintf("malformed external evaluation: %s", e.Detail)
}

// ParseExternalEvaluation decodes a model-produced evaluation payload.
// Every numeric field is clamped into its documented range and missing or
// unreadable fields take their defaults, so a partially valid payload still
// yields a usable evaluation.
func ParseExternalEvaluation(payload string) (types.ExternalEvaluation, error) {
	cleaned := llm.CleanJSONBlock(payload)
	if strings.TrimSpace(cleaned) == "" {
		return types.ExternalEvaluation{}, &MalformedEvaluationError{Detail: "empty payload"}
	}

	root := gjson.Parse(cleaned)
	if !root.IsObject() {
		return types.ExternalEvaluation{}, &MalformedEvaluationError{Detail: "payload is not a JSON object"}
	}

	return types.ExternalEvaluation{
		OverallScore:           numberOrDefault(root.Get("overall_score"), 5, 1, 10),
		TechnicalDepth:         numberOrDefault(root.Get("technical_depth"), 3, 1, 5),
		CommunicationClarity:   numberOrDefault(root.Get("communication_clarity"), 3, 1, 5),
		RelevanceToRole:        numberOrDefault(root.Get("relevance_to_role"), 3, 1, 5),
		SpecificExamples:       numberOrDefault(root.Get("specific_examples"), 2, 1, 5),
		ProblemSolvingApproach: numberOrDefault(root.Get("problem_solving_approach"), 3, 1, 5),
		Strengths:              stringList(root.Get("strengths"), 3, "Provided response"),
		Improvements:           stringList(root.Get("improvements"), 3, "Could provide more detail"),
		TechnicalKeywordsUsed:  stringList(root.Get("technical_keywords_used"), 5),
		DemonstratesExperience: root.Get("demonstrates_experience").Bool(),
		ShowsLeadership:        root.Get("shows_leadership").Bool(),
		MentionsMetrics:        root.Get("mentions_metrics").Bool(),
		BriefFeedback:          stringOrDefault(root.Get("brief_feedback"), "Thank you for your response."),
	}, nil
}

// Surface markers used by the fallback synthesis.
var (
	fallbackExampleMarkers   = []string{"example", "project", "experience", "when i", "i worked"}
	fallbackTechnicalMarkers = []string{"algorithm", "database", "api", "framework", "architecture"}
)

// FallbackEvaluation synthesizes a deterministic evaluation from surface
// features of the response. It stands in for the external model when that is
// unavailable or unusable; scores derive from the response itself rather than
// a flat mid-scale default.
func FallbackEvaluation(response string) types.ExternalEvaluation {
	responseLower := strings.ToLower(response)
	wordCount := len(strings.Fields(response))

	hasExamples := containsAny(responseLower, fallbackExampleMarkers)
	hasTechnicalTerms := containsAny(responseLower, fallbackTechnicalMarkers)

	overall := 4 + wordCount/30
	if hasExamples {
		overall += 2
	}
	if hasTechnicalTerms {
		overall++
	}
	if overall < 3 {
		overall = 3
	}
	if overall > 8 {
		overall = 8
	}

	strength := "Addressed the question"
	if wordCount > 50 {
		strength = "Provided detailed response"
	}

	improvement := "Could provide more technical depth"
	if !hasExamples {
		improvement = "Could include more specific examples"
	}

	return types.ExternalEvaluation{
		OverallScore:           float64(overall),
		TechnicalDepth:         pick(hasTechnicalTerms, 4, 3),
		CommunicationClarity:   pick(wordCount > 50, 4, 3),
		RelevanceToRole:        pick(wordCount > 40, 4, 3),
		SpecificExamples:       pick(hasExamples, 4, 2),
		ProblemSolvingApproach: 3,
		Strengths:              []string{strength},
		Improvements:           []string{improvement},
		TechnicalKeywordsUsed:  []string{},
		DemonstratesExperience: hasExamples,
		ShowsLeadership:        strings.Contains(responseLower, "lead") || strings.Contains(responseLower, "manage"),
		MentionsMetrics:        strings.ContainsAny(response, "0123456789"),
		BriefFeedback:          "Thank you for sharing your experience. Consider providing more specific examples and technical details.",
	}
}

func pick(condition bool, ifTrue, ifFalse float64) float64 {
	if condition {
		return ifTrue
	}
	return ifFalse
}

func numberOrDefault(value gjson.Result, fallback, low, high float64) float64 {
	if !value.Exists() || value.Type == gjson.Null {
		return fallback
	}
	return clamp(value.Float(), low, high)
}

func stringOrDefault(value gjson.Result, fallback string) string {
	if s := strings.TrimSpace(value.String()); s != "" {
		return s
	}
	return fallback
}

// stringList reads a JSON array of strings, dropping blanks and capping the
// result at limit. When nothing usable is present the fallback entries (if
// any) are returned instead.
func stringList(value gjson.Result, limit int, fallback ...string) []string {
	out := make([]string, 0, limit)
	if value.IsArray() {
		for _, item := range value.Array() {
			s := strings.TrimSpace(item.String())
			if s == "" {
				continue
			}
			out = append(out, s)
			if len(out) == limit {
				break
			}
		}
	}

	if len(out) == 0 && len(fallback) > 0 {
		return append(out, fallback...)
	}
	return out
}
