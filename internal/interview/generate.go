package interview

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/interview-scorer/internal/llm"
	"github.com/jonathan/interview-scorer/internal/prompts"
)

// Context budget for question generation: enough to personalize, small
// enough to keep the prompt cheap.
const (
	contextJobDescriptionChars = 600
	contextMaxSkills           = 15
	contextMaxOrganizations    = 8
	contextRecentResponses     = 3
	contextResponsePreview     = 150
)

// minGeneratedQuestionLen rejects degenerate model output; anything shorter
// than this or lacking a question mark falls back to the curated bank.
const minGeneratedQuestionLen = 15

// draftQuestion produces the next question text for the category. The model
// drafts it when a client is available and the draft validates; otherwise the
// curated bank answers. The second return reports whether the model's draft
// was used.
func (m *Manager) draftQuestion(ctx context.Context, session *Session, category string) (string, bool) {
	if m.client == nil {
		return bankQuestion(category, m.rng), false
	}

	text, err := m.generateQuestion(ctx, session, category)
	if err != nil {
		m.logger.Warn("question generation failed, using curated question",
			zap.String("category", category), zap.Error(err))
		return bankQuestion(category, m.rng), false
	}
	return text, true
}

func (m *Manager) generateQuestion(ctx context.Context, session *Session, category string) (string, error) {
	prompt := prompts.MustRender("interview.json", "generate-question", map[string]string{
		"Category": category,
		"Context":  questionContext(session),
	})

	raw, err := m.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	question := strings.TrimSpace(raw)
	question = strings.Trim(question, "\"")
	if len(question) < minGeneratedQuestionLen || !strings.Contains(question, "?") {
		return "", fmt.Errorf("generated question unusable: %q", question)
	}
	return question, nil
}

// questionContext assembles the personalization context: job requirements,
// candidate skills and history, and the most recent discussion.
func questionContext(session *Session) string {
	var parts []string

	if job := strings.TrimSpace(session.JobDescription); job != "" {
		parts = append(parts, "Job Requirements: "+truncate(job, contextJobDescriptionChars))
	}

	if candidate := session.Candidate; candidate != nil {
		if skills := headOf(candidate.Skills, contextMaxSkills); len(skills) > 0 {
			parts = append(parts, "Candidate Skills: "+strings.Join(skills, ", "))
		}
		if orgs := headOf(candidate.Organizations, contextMaxOrganizations); len(orgs) > 0 {
			parts = append(parts, "Work Experience: "+strings.Join(orgs, ", "))
		}
	}

	if recent := recentDiscussion(session); recent != "" {
		parts = append(parts, "Recent Discussion:\n"+recent)
	}

	if len(parts) == 0 {
		return "General software engineering interview."
	}
	return strings.Join(parts, "\n\n")
}

func recentDiscussion(session *Session) string {
	responses := session.Responses
	if len(responses) > contextRecentResponses {
		responses = responses[len(responses)-contextRecentResponses:]
	}

	var lines []string
	for _, r := range responses {
		preview := truncate(strings.TrimSpace(r.Response), contextResponsePreview)
		if preview == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", r.Category, preview))
	}
	return strings.Join(lines, "\n")
}

func headOf(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
