package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/interview-scorer/internal/ingestion"
	"github.com/jonathan/interview-scorer/internal/interview"
)

// CreateSessionRequest represents the request body for POST /sessions.
// The same fields arrive as form values on multipart requests, which may
// additionally carry a "resume" file (.pdf, .txt or .md).
type CreateSessionRequest struct {
	CandidateName  string `json:"candidate_name,omitempty"`
	Role           string `json:"role,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	ResumeText     string `json:"resume_text,omitempty"`
	NumQuestions   int    `json:"num_questions,omitempty"`
}

// SubmitResponseRequest represents the request body for
// POST /sessions/{id}/responses.
type SubmitResponseRequest struct {
	QuestionID   string `json:"question_id" validate:"required"`
	ResponseText string `json:"response_text" validate:"required"`
}

// SessionSummary is the list-view projection of a session.
type SessionSummary struct {
	SessionID      string           `json:"session_id"`
	CandidateName  string           `json:"candidate_name"`
	Role           string           `json:"role,omitempty"`
	Status         interview.Status `json:"status"`
	QuestionsAsked int              `json:"questions_asked"`
	ResponseCount  int              `json:"response_count"`
	TotalQuestions int              `json:"total_questions"`
	MatchComputed  bool             `json:"match_computed"`
	CreatedAt      time.Time        `json:"created_at"`
}

// decodeJSON decodes a request body into dst, bounded by the upload limit.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return &ErrValidation{Message: "invalid request body"}
	}
	return nil
}

// validateRequest runs struct tag validation, normalizing the error.
func (s *Server) validateRequest(dst any) error {
	if err := s.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// handleCreateSession creates a new interview session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	input, err := s.sessionInput(w, r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	session, err := s.manager.CreateSession(r.Context(), *input)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, session)
}

// sessionInput builds the manager input from either a JSON or a multipart
// request, resolving a job URL into posting text when needed.
func (s *Server) sessionInput(w http.ResponseWriter, r *http.Request) (*interview.CreateSessionInput, error) {
	var req CreateSessionRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := s.readMultipartSession(r, &req); err != nil {
			return nil, err
		}
	} else if err := s.decodeJSON(w, r, &req); err != nil {
		return nil, err
	}

	if err := s.validateRequest(&req); err != nil {
		return nil, err
	}

	jobDescription := req.JobDescription
	if strings.TrimSpace(jobDescription) == "" && req.JobURL != "" {
		fetched, _, err := ingestion.IngestFromURL(r.Context(), s.fetcher, req.JobURL)
		if err != nil {
			return nil, err
		}
		jobDescription = fetched
	}

	return &interview.CreateSessionInput{
		CandidateName:  req.CandidateName,
		Role:           req.Role,
		JobDescription: jobDescription,
		ResumeText:     req.ResumeText,
		NumQuestions:   req.NumQuestions,
	}, nil
}

// readMultipartSession fills req from form values and extracts the optional
// resume file into req.ResumeText.
func (s *Server) readMultipartSession(r *http.Request, req *CreateSessionRequest) error {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return &ErrValidation{Message: "invalid multipart form"}
	}

	req.CandidateName = r.FormValue("candidate_name")
	req.Role = r.FormValue("role")
	req.JobDescription = r.FormValue("job_description")
	req.JobURL = r.FormValue("job_url")
	req.ResumeText = r.FormValue("resume_text")
	if raw := r.FormValue("num_questions"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return &ErrValidation{Field: "num_questions", Message: "must be an integer"}
		}
		req.NumQuestions = n
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil
		}
		return &ErrValidation{Field: "resume", Message: "unreadable upload"}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		return &ErrValidation{Field: "resume", Message: "unreadable upload"}
	}
	if int64(len(data)) > s.maxUploadBytes {
		return &ingestion.DocumentTooLargeError{Size: int64(len(data)), Limit: s.maxUploadBytes}
	}

	text, err := ingestion.ExtractDocumentText(header.Filename, data)
	if err != nil {
		return err
	}
	req.ResumeText = ingestion.CleanText(text)
	return nil
}

// handleListSessions returns summaries of all sessions, oldest first.
func (s *Server) handleListSessions(w http.ResponseWriter, _ *http.Request) {
	sessions := s.manager.ListSessions()

	summaries := make([]SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, SessionSummary{
			SessionID:      session.ID,
			CandidateName:  session.CandidateName,
			Role:           session.Role,
			Status:         session.Status,
			QuestionsAsked: session.AskedQuestions,
			ResponseCount:  len(session.Responses),
			TotalQuestions: session.TotalQuestions,
			MatchComputed:  session.Match.Computed,
			CreatedAt:      session.CreatedAt,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sessions": summaries,
		"count":    len(summaries),
	})
}

// handleGetSession returns the full state of one session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.manager.GetSession(r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

// handleDeleteSession removes a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.DeleteSession(r.PathValue("id")); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleNextQuestion advances the interview by one question.
func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	result, err := s.manager.NextQuestion(r.Context(), r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleSubmitResponse scores one response against its question.
func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponseRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if err := s.validateRequest(&req); err != nil {
		s.handleError(w, err)
		return
	}

	result, err := s.manager.SubmitResponse(r.Context(), r.PathValue("id"), req.QuestionID, req.ResponseText)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleSessionReport completes the session and returns the final report.
// Completing an already completed session regenerates the same report.
func (s *Server) handleSessionReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.manager.CompleteSession(r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}
