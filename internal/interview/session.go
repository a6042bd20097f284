// Package interview orchestrates interview sessions: question sequencing,
// response scoring, and final report assembly. Session state lives behind a
// Store; the Manager owns every transition.
package interview

import (
	"time"

	"github.com/jonathan/interview-scorer/internal/types"
)

// Status values for a session lifecycle.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Question records one question asked during a session.
type Question struct {
	ID           string    `json:"question_id"`
	Text         string    `json:"question_text"`
	Category     string    `json:"category"`
	Number       int       `json:"question_number"` // 1-based
	GeneratedAt  time.Time `json:"generated_at"`
	Personalized bool      `json:"personalized"`    // candidate record informed generation
	ModelDrafted bool      `json:"model_drafted"`   // false when drawn from the curated bank
}

// Session is the full state of one interview engagement. Responses hold the
// frozen per-response evaluations in submission order; aggregation reads them
// as an immutable snapshot.
type Session struct {
	ID             string                          `json:"session_id"`
	CandidateName  string                          `json:"candidate_name"`
	Role           string                          `json:"role,omitempty"`
	JobDescription string                          `json:"job_description,omitempty"`
	Candidate      *types.CandidateRecord          `json:"candidate,omitempty"`
	Match          types.MatchResult               `json:"match"`
	Status         Status                          `json:"status"`
	TotalQuestions int                             `json:"total_questions"`
	AskedQuestions int                             `json:"asked_questions"`
	Questions      []Question                      `json:"questions"`
	Responses      []types.ComprehensiveEvaluation `json:"responses"`
	CreatedAt      time.Time                       `json:"created_at"`
	CompletedAt    time.Time                       `json:"completed_at,omitempty"`
}

// Clone returns a deep copy. The store hands out clones so callers can never
// mutate stored state behind the Manager's back.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Candidate != nil {
		candidate := *s.Candidate
		candidate.Skills = append([]string(nil), s.Candidate.Skills...)
		candidate.Organizations = append([]string(nil), s.Candidate.Organizations...)
		out.Candidate = &candidate
	}
	out.Match.MatchedSkills = append([]string(nil), s.Match.MatchedSkills...)
	out.Questions = append([]Question(nil), s.Questions...)
	out.Responses = append([]types.ComprehensiveEvaluation(nil), s.Responses...)
	return &out
}

// questionByID finds an asked question, or nil.
func (s *Session) questionByID(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}
