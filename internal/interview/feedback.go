package interview

import "math/rand"

// feedbackMessages maps a performance bucket to candidate-facing feedback
// lines spoken after each response.
var feedbackMessages = map[string][]string{
	"excellent": {
		"Excellent response! Your detailed explanation and specific examples really demonstrate strong experience in this area.",
		"Outstanding answer! The technical depth and practical examples you provided show impressive expertise.",
		"Fantastic response! Your approach shows both technical competence and strategic thinking.",
	},
	"good": {
		"Great response! You provided good insights and relevant examples that show your experience clearly.",
		"Nice answer! Your explanation demonstrates solid understanding and practical knowledge.",
		"Good response! The examples you shared effectively illustrate your capabilities.",
	},
	"average": {
		"Thank you for that response. Consider adding more specific examples to strengthen your answer.",
		"I appreciate your answer. Adding more technical details or metrics would make it even stronger.",
		"Good start on that response. More concrete examples would help demonstrate your experience better.",
	},
	"below_average": {
		"Thank you for sharing that. In future responses, try to include specific examples and more detailed explanations.",
		"I appreciate your input. Consider providing more depth and concrete examples to showcase your experience.",
		"Thanks for your response. Adding specific situations and outcomes would strengthen your answers.",
	},
}

// feedbackFor selects a feedback line for a final overall score. A nil rng
// picks the first line of the bucket.
func feedbackFor(score float64, rng *rand.Rand) string {
	var bucket string
	switch {
	case score >= 8:
		bucket = "excellent"
	case score >= 6:
		bucket = "good"
	case score >= 4:
		bucket = "average"
	default:
		bucket = "below_average"
	}
	return pickString(feedbackMessages[bucket], rng)
}
