package interview

import "math/rand"

// Question categories. The flow repeats the five-category cycle twice, which
// covers the maximum planned interview length; any overflow alternates
// between technical and behavioral.
const (
	CategoryIntroduction   = "introduction"
	CategoryTechnical      = "technical"
	CategoryBehavioral     = "behavioral"
	CategoryProblemSolving = "problem_solving"
	CategoryRoleSpecific   = "role_specific"
)

// openingQuestion is always question number one, regardless of category flow.
const openingQuestion = "Hello! Thank you for taking the time to interview with us today. " +
	"To start, please tell me about yourself, your background, and what brings you to this opportunity."

var categoryFlow = []string{
	CategoryIntroduction,
	CategoryTechnical,
	CategoryBehavioral,
	CategoryProblemSolving,
	CategoryRoleSpecific,
	CategoryIntroduction,
	CategoryTechnical,
	CategoryBehavioral,
	CategoryProblemSolving,
	CategoryRoleSpecific,
}

// questionBank holds the curated fallback questions used when no model is
// available or generation fails.
var questionBank = map[string][]string{
	CategoryIntroduction: {
		"Tell me about yourself and your background in software development.",
		"Walk me through your resume and highlight your most significant experiences.",
		"What motivated you to pursue a career in technology?",
		"Describe your journey from learning to code to where you are today.",
	},
	CategoryTechnical: {
		"Describe the most complex technical problem you've solved recently.",
		"How do you approach system design for scalable applications?",
		"Explain your experience with different programming paradigms.",
		"Walk me through your debugging process when facing a critical issue.",
		"How do you ensure code quality and maintainability in your projects?",
		"Describe your experience with database design and optimization.",
		"What's your approach to API design and integration?",
	},
	CategoryBehavioral: {
		"Tell me about a time when you had to work under extreme pressure.",
		"Describe a situation where you had to collaborate with a challenging team member.",
		"How do you handle technical disagreements with colleagues?",
		"Give me an example of when you had to learn a completely new technology quickly.",
		"Describe a project failure and what you learned from it.",
		"How do you balance technical debt with feature development?",
		"Tell me about a time when you mentored or helped a junior developer.",
	},
	CategoryRoleSpecific: {
		"What specific aspects of this role excite you the most?",
		"How would you contribute to our team's technical culture?",
		"Where do you see the future of software development heading?",
		"What's your approach to staying current with technology trends?",
		"How do you balance innovation with practical business needs?",
		"Describe your ideal working environment and team dynamics.",
	},
	CategoryProblemSolving: {
		"Walk me through how you would architect a real-time chat application.",
		"How would you optimize a slow-performing database query?",
		"Describe your approach to handling a production system outage.",
		"How would you design a system to handle millions of concurrent users?",
	},
}

// categoryFor returns the category for a zero-based question index.
func categoryFor(questionIndex int) string {
	if questionIndex < len(categoryFlow) {
		return categoryFlow[questionIndex]
	}
	if questionIndex%2 == 0 {
		return CategoryTechnical
	}
	return CategoryBehavioral
}

// bankQuestion picks a curated question for the category. An unknown category
// falls back to the introduction bank. A nil rng picks the first entry, which
// keeps bank selection deterministic for tests and degraded deployments.
func bankQuestion(category string, rng *rand.Rand) string {
	bank, ok := questionBank[category]
	if !ok {
		bank = questionBank[CategoryIntroduction]
	}
	return pickString(bank, rng)
}

func pickString(options []string, rng *rand.Rand) string {
	if len(options) == 0 {
		return ""
	}
	if rng == nil {
		return options[0]
	}
	return options[rng.Intn(len(options))]
}
