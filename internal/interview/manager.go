package interview

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-scorer/internal/llm"
	"github.com/jonathan/interview-scorer/internal/logging"
	"github.com/jonathan/interview-scorer/internal/matching"
	"github.com/jonathan/interview-scorer/internal/parsing"
	"github.com/jonathan/interview-scorer/internal/reporting"
	"github.com/jonathan/interview-scorer/internal/scoring"
	"github.com/jonathan/interview-scorer/internal/types"
)

// Planned question count bounds. Requests outside the range are clamped, not
// rejected.
const (
	DefaultQuestions = 5
	MinQuestions     = 3
	MaxQuestions     = 10
)

// completeWords is the word count treated as a fully developed answer when
// estimating response completeness.
const completeWords = 50

// Manager drives interview sessions end to end: extraction, matching,
// question sequencing, response scoring, and report assembly. A nil model
// client degrades gracefully to curated questions and heuristic evaluation;
// a nil matcher leaves every match explicitly not computed.
type Manager struct {
	store   Store
	client  llm.Client
	matcher *matching.Matcher
	logger  *zap.Logger
	rng     *rand.Rand

	defaultQuestions int
	minQuestions     int
	maxQuestions     int

	// locks serializes mutations per session so an evaluation in flight can
	// never interleave with another append on the same session.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// ManagerOptions configures a Manager. Zero values select the defaults.
type ManagerOptions struct {
	Client  llm.Client        // nil: curated questions, heuristic evaluation
	Matcher *matching.Matcher // nil: matching skipped
	Logger  *zap.Logger
	Rand    *rand.Rand // nil: deterministic first-entry selection

	DefaultQuestions int
	MinQuestions     int
	MaxQuestions     int
}

// NewManager creates a session manager on top of the given store.
func NewManager(store Store, opts ManagerOptions) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		store:            store,
		client:           opts.Client,
		matcher:          opts.Matcher,
		logger:           logger,
		rng:              opts.Rand,
		defaultQuestions: opts.DefaultQuestions,
		minQuestions:     opts.MinQuestions,
		maxQuestions:     opts.MaxQuestions,
		locks:            make(map[string]*sync.Mutex),
	}
	if m.defaultQuestions <= 0 {
		m.defaultQuestions = DefaultQuestions
	}
	if m.minQuestions <= 0 {
		m.minQuestions = MinQuestions
	}
	if m.maxQuestions <= 0 {
		m.maxQuestions = MaxQuestions
	}
	return m
}

// CreateSessionInput carries everything known about the engagement up front.
// Candidate, when set, skips resume extraction.
type CreateSessionInput struct {
	CandidateName  string
	Role           string
	JobDescription string
	ResumeText     string
	Candidate      *types.CandidateRecord
	NumQuestions   int
}

// CreateSession builds and stores a new active session. Resume extraction and
// match computation are best effort: their failure degrades the session
// (no candidate record, match not computed) instead of failing creation.
func (m *Manager) CreateSession(ctx context.Context, input CreateSessionInput) (*Session, error) {
	name := strings.TrimSpace(input.CandidateName)
	if name == "" {
		name = "Anonymous Candidate"
	}

	candidate := input.Candidate
	if candidate == nil && strings.TrimSpace(input.ResumeText) != "" {
		record, err := parsing.ExtractCandidate(ctx, m.client, input.ResumeText)
		if err != nil {
			m.logger.Warn("candidate extraction failed, continuing without resume data",
				zap.Error(err))
		} else {
			candidate = record
		}
	}

	// Matching runs once, here, and only when both sides exist. A provider
	// failure leaves the match explicitly not computed; the Computed flag
	// keeps that distinguishable from a genuine zero score.
	match := matching.NotComputed()
	if candidate != nil && strings.TrimSpace(input.JobDescription) != "" && m.matcher != nil {
		computed, err := m.matcher.ComputeMatch(ctx, *candidate, input.JobDescription)
		if err != nil {
			m.logger.Warn("match computation failed, continuing without match score",
				zap.Error(err))
		} else {
			match = computed
		}
	}

	session := &Session{
		ID:             uuid.NewString(),
		CandidateName:  name,
		Role:           strings.TrimSpace(input.Role),
		JobDescription: input.JobDescription,
		Candidate:      candidate,
		Match:          match,
		Status:         StatusActive,
		TotalQuestions: m.clampQuestionCount(input.NumQuestions),
		CreatedAt:      time.Now().UTC(),
	}
	if err := m.store.Put(session); err != nil {
		return nil, err
	}

	m.logger.Info("interview session created",
		append(logging.SessionFields(session.ID, ""),
			zap.String("candidate", session.CandidateName),
			zap.Int("total_questions", session.TotalQuestions),
			zap.Bool("match_computed", session.Match.Computed))...)

	return session, nil
}

// GetSession returns a copy of a session.
func (m *Manager) GetSession(id string) (*Session, error) {
	return m.store.Get(id)
}

// ListSessions returns copies of all sessions, oldest first.
func (m *Manager) ListSessions() []*Session {
	return m.store.List()
}

// DeleteSession removes a session and its lock.
func (m *Manager) DeleteSession(id string) error {
	if err := m.store.Delete(id); err != nil {
		return err
	}
	m.locksMu.Lock()
	delete(m.locks, id)
	m.locksMu.Unlock()
	return nil
}

// Prune drops sessions older than maxAge and returns how many were removed.
func (m *Manager) Prune(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)
	pruned := 0
	for _, session := range m.store.List() {
		if session.CreatedAt.Before(cutoff) {
			if err := m.DeleteSession(session.ID); err == nil {
				pruned++
			}
		}
	}
	if pruned > 0 {
		m.logger.Info("pruned expired sessions", zap.Int("count", pruned))
	}
	return pruned
}

// QuestionResult is the outcome of NextQuestion. Completed marks the planned
// questions as exhausted; the session is completed and Question is nil.
type QuestionResult struct {
	Completed          bool      `json:"completed"`
	Question           *Question `json:"question,omitempty"`
	RemainingQuestions int       `json:"remaining_questions"`
	TotalQuestions     int       `json:"total_questions"`
	ProgressPercent    float64   `json:"progress_percent"`
	ResponsesCollected int       `json:"responses_collected,omitempty"`
	CandidateName      string    `json:"candidate_name,omitempty"`
}

// NextQuestion advances the session by one question. The first question is
// always the fixed greeting; later ones follow the category flow and are
// drafted by the model when one is available, with the curated bank as
// fallback.
func (m *Manager) NextQuestion(ctx context.Context, sessionID string) (*QuestionResult, error) {
	unlock := m.lockSession(sessionID)
	defer unlock()

	session, err := m.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != StatusActive {
		return nil, ErrSessionCompleted
	}

	if session.AskedQuestions >= session.TotalQuestions {
		session.Status = StatusCompleted
		if session.CompletedAt.IsZero() {
			session.CompletedAt = time.Now().UTC()
		}
		if err := m.store.Put(session); err != nil {
			return nil, err
		}
		return &QuestionResult{
			Completed:          true,
			TotalQuestions:     session.TotalQuestions,
			ProgressPercent:    100,
			ResponsesCollected: len(session.Responses),
			CandidateName:      session.CandidateName,
		}, nil
	}

	index := session.AskedQuestions
	category := categoryFor(index)

	var text string
	var modelDrafted bool
	if index == 0 {
		text = openingQuestion
	} else {
		text, modelDrafted = m.draftQuestion(ctx, session, category)
	}

	question := Question{
		ID:           uuid.NewString(),
		Text:         text,
		Category:     category,
		Number:       index + 1,
		GeneratedAt:  time.Now().UTC(),
		Personalized: session.Candidate != nil,
		ModelDrafted: modelDrafted,
	}
	session.Questions = append(session.Questions, question)
	session.AskedQuestions = index + 1
	if err := m.store.Put(session); err != nil {
		return nil, err
	}

	m.logger.Info("question issued",
		append(logging.SessionFields(session.ID, category),
			zap.Int("number", question.Number),
			zap.Int("total", session.TotalQuestions),
			zap.Bool("model_drafted", modelDrafted))...)

	return &QuestionResult{
		Question:           &question,
		RemainingQuestions: session.TotalQuestions - question.Number,
		TotalQuestions:     session.TotalQuestions,
		ProgressPercent:    round1(float64(question.Number) / float64(session.TotalQuestions) * 100),
	}, nil
}

// ResponseAnalytics summarizes surface features of a submitted response.
type ResponseAnalytics struct {
	WordCount                int     `json:"word_count"`
	CharacterCount           int     `json:"character_count"`
	EstimatedSpeakingSeconds float64 `json:"estimated_speaking_seconds"`
	Completeness             float64 `json:"response_completeness"` // 0-1
}

// Progress reports how far through the planned questions the session is.
type Progress struct {
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// ResponseResult is the outcome of SubmitResponse.
type ResponseResult struct {
	Evaluation types.ComprehensiveEvaluation `json:"evaluation"`
	Score      float64                       `json:"score"` // final overall, one decimal
	Feedback   string                        `json:"feedback"`
	Analytics  ResponseAnalytics             `json:"response_analytics"`
	NextAction string                        `json:"next_action"` // continue | complete
	Progress   Progress                      `json:"progress"`
}

// SubmitResponse evaluates one response and appends the result to the
// session. The evaluation runs before the session lock section completes its
// append, so a failed evaluation records nothing: at most one result per
// submission, never partial state.
func (m *Manager) SubmitResponse(ctx context.Context, sessionID, questionID, responseText string) (*ResponseResult, error) {
	unlock := m.lockSession(sessionID)
	defer unlock()

	session, err := m.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	question := session.questionByID(questionID)
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	external := m.judge(ctx, question.Text, responseText, question.Category)
	evaluation := scoring.Evaluate(question.Text, responseText, question.Category, external)

	session.Responses = append(session.Responses, evaluation)
	if err := m.store.Put(session); err != nil {
		return nil, err
	}

	m.logger.Info("response evaluated",
		append(logging.SessionFields(session.ID, question.Category),
			zap.Int("question_number", question.Number),
			zap.Float64("score", evaluation.FinalOverallScore),
			zap.Bool("used_fallback", evaluation.UsedFallback))...)

	nextAction := "continue"
	if session.AskedQuestions >= session.TotalQuestions {
		nextAction = "complete"
	}

	wordCount := len(strings.Fields(responseText))
	return &ResponseResult{
		Evaluation: evaluation,
		Score:      round1(evaluation.FinalOverallScore),
		Feedback:   feedbackFor(evaluation.FinalOverallScore, m.rng),
		Analytics: ResponseAnalytics{
			WordCount:                wordCount,
			CharacterCount:           len(responseText),
			EstimatedSpeakingSeconds: float64(wordCount) * 0.5,
			Completeness:             math.Min(1, float64(wordCount)/completeWords),
		},
		NextAction: nextAction,
		Progress: Progress{
			Current: session.AskedQuestions,
			Total:   session.TotalQuestions,
			Percent: round1(float64(session.AskedQuestions) / float64(session.TotalQuestions) * 100),
		},
	}, nil
}

// judge obtains the external evaluation, or nil when no model is available or
// the call fails; the scoring layer then runs in degraded mode.
func (m *Manager) judge(ctx context.Context, question, response, category string) *types.ExternalEvaluation {
	if m.client == nil {
		return nil
	}
	external, err := scoring.JudgeResponse(ctx, m.client, question, response, category)
	if err != nil {
		m.logger.Warn("external evaluation failed, falling back to heuristic scoring",
			zap.Error(err))
		return nil
	}
	return external
}

// CompleteSession freezes the session and assembles the final report from a
// snapshot of its responses. Completing an already completed session is
// allowed and regenerates the same report.
func (m *Manager) CompleteSession(sessionID string) (*SessionReport, error) {
	unlock := m.lockSession(sessionID)
	defer unlock()

	session, err := m.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Responses) == 0 {
		return nil, ErrNoResponses
	}

	if session.Status != StatusCompleted {
		session.Status = StatusCompleted
		session.CompletedAt = time.Now().UTC()
		if err := m.store.Put(session); err != nil {
			return nil, err
		}
	}

	aggregate := reporting.Aggregate(session.Responses)
	insights := reporting.Insights(aggregate)
	report := composeReport(session, aggregate, insights)

	m.logger.Info("session report generated",
		append(logging.SessionFields(session.ID, ""),
			zap.Int("responses", len(session.Responses)),
			zap.String("recommendation", report.Performance.Recommendation))...)

	return report, nil
}

func (m *Manager) clampQuestionCount(requested int) int {
	if requested <= 0 {
		return m.defaultQuestions
	}
	if requested < m.minQuestions {
		return m.minQuestions
	}
	if requested > m.maxQuestions {
		return m.maxQuestions
	}
	return requested
}

// lockSession acquires the per-session mutex and returns its release func.
func (m *Manager) lockSession(id string) func() {
	m.locksMu.Lock()
	lock, ok := m.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[id] = lock
	}
	m.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
