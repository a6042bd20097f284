package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/interview-scorer/internal/ingestion"
	"github.com/jonathan/interview-scorer/internal/parsing"
	"github.com/jonathan/interview-scorer/internal/types"
)

// MatchRequest represents the request body for POST /match. Callers supply a
// candidate either as explicit skills or as resume text to parse, and a job
// as posting text or a URL to fetch.
type MatchRequest struct {
	CandidateName  string   `json:"candidate_name,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	ResumeText     string   `json:"resume_text,omitempty"`
	JobDescription string   `json:"job_description,omitempty"`
	JobURL         string   `json:"job_url,omitempty" validate:"omitempty,url"`
}

// MatchResponse pairs the computed match with the candidate it was scored
// against, so callers can see what skill extraction produced. Job carries
// provenance when the posting came from a URL.
type MatchResponse struct {
	Candidate types.CandidateRecord `json:"candidate"`
	Match     types.MatchResult     `json:"match"`
	Job       *ingestion.Metadata   `json:"job,omitempty"`
}

// handleMatch computes a stateless candidate-to-job match.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if s.matcher == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "matching is not available: no embedding provider configured")
		return
	}

	var req MatchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if err := s.validateRequest(&req); err != nil {
		s.handleError(w, err)
		return
	}

	jobDescription := req.JobDescription
	var jobMeta *ingestion.Metadata
	if strings.TrimSpace(jobDescription) == "" && req.JobURL != "" {
		var err error
		jobDescription, jobMeta, err = ingestion.IngestFromURL(r.Context(), s.fetcher, req.JobURL)
		if err != nil {
			s.handleError(w, err)
			return
		}
	}
	if strings.TrimSpace(jobDescription) == "" {
		s.handleError(w, &ErrValidation{Field: "job_description", Message: "job_description or job_url is required"})
		return
	}

	candidate, err := s.matchCandidate(r, &req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	match, err := s.matcher.ComputeMatch(r.Context(), *candidate, jobDescription)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchResponse{Candidate: *candidate, Match: match, Job: jobMeta})
}

// matchCandidate resolves the candidate record, preferring explicit skills
// over resume parsing.
func (s *Server) matchCandidate(r *http.Request, req *MatchRequest) (*types.CandidateRecord, error) {
	if len(req.Skills) > 0 {
		candidate := types.CandidateRecord{Name: req.CandidateName, Skills: req.Skills}
		candidate.Normalize()
		return &candidate, nil
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, &ErrValidation{Field: "skills", Message: "skills or resume_text is required"}
	}

	candidate, err := parsing.ExtractCandidate(r.Context(), s.client, req.ResumeText)
	if err != nil {
		return nil, err
	}
	if req.CandidateName != "" {
		candidate.Name = req.CandidateName
	}
	return candidate, nil
}
