// Package scoring evaluates interview responses by reconciling an external
// model's judgment with deterministic rule-based signals.
package scoring

import "strings"

// domainKeywords associates a technical domain with its indicator keywords.
type domainKeywords struct {
	name     string
	keywords []string
}

// technicalDomains is the fixed taxonomy used for keyword scoring.
// Order matters: depth assessment breaks hit-count ties in favor of
// earlier domains.
var technicalDomains = []domainKeywords{
	{
		name: "programming",
		keywords: []string{
			"algorithm", "data structure", "object-oriented", "functional", "debugging",
			"testing", "unit test", "integration", "api", "database", "sql", "nosql",
		},
	},
	{
		name: "web_development",
		keywords: []string{
			"frontend", "backend", "full-stack", "react", "vue", "angular", "node.js",
			"express", "django", "flask", "rest", "graphql", "microservices",
		},
	},
	{
		name: "data_science",
		keywords: []string{
			"machine learning", "deep learning", "neural network", "pandas", "numpy",
			"tensorflow", "pytorch", "scikit-learn", "data analysis", "visualization",
		},
	},
	{
		name: "devops",
		keywords: []string{
			"docker", "kubernetes", "ci/cd", "jenkins", "git", "aws", "azure", "gcp",
			"terraform", "ansible", "monitoring", "deployment",
		},
	},
}

// indicatorGroup associates a response-quality category with its marker phrases.
// All phrases are lowercase; matching happens against lowercased responses.
type indicatorGroup struct {
	name    string
	phrases []string
}

const (
	indicatorExamples       = "examples"
	indicatorMetrics        = "metrics"
	indicatorLeadership     = "leadership"
	indicatorProblemSolving = "problem_solving"
)

var qualityIndicators = []indicatorGroup{
	{
		name: indicatorExamples,
		phrases: []string{
			"for example", "for instance", "in my experience", "when i worked on",
			"at my previous job", "in this project", "specifically", "particularly",
		},
	},
	{
		name: indicatorMetrics,
		phrases: []string{
			"increased by", "decreased by", "improved", "reduced", "% improvement",
			"performance gain", "faster", "more efficient", "cost saving",
		},
	},
	{
		name: indicatorLeadership,
		phrases: []string{
			"led a team", "managed", "coordinated", "organized", "mentored",
			"trained", "guided", "supervised", "collaborated",
		},
	},
	{
		name: indicatorProblemSolving,
		phrases: []string{
			"solved", "resolved", "fixed", "debugged", "optimized", "improved",
			"identified", "analyzed", "troubleshot", "implemented solution",
		},
	},
}

func totalKeywordCount() int {
	total := 0
	for _, domain := range technicalDomains {
		total += len(domain.keywords)
	}
	return total
}

func indicatorPhrases(name string) []string {
	for _, group := range qualityIndicators {
		if group.name == name {
			return group.phrases
		}
	}
	return nil
}

func containsAny(haystack string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(haystack, phrase) {
			return true
		}
	}
	return false
}
