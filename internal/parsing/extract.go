// Package parsing turns raw resume text into a structured CandidateRecord.
// Extraction prefers the model when a client is available and falls back to
// regex scanning, so a record comes back whenever the text carries any signal.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/interview-scorer/internal/llm"
	"github.com/jonathan/interview-scorer/internal/types"
)

// ExtractCandidate extracts a candidate record from resume text. A nil client
// or an unusable model reply degrades to heuristic scanning; the error cases
// are empty input and text with no recoverable signal.
func ExtractCandidate(ctx context.Context, client llm.Client, resumeText string) (*types.CandidateRecord, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &ExtractionError{Message: "resume text is empty"}
	}

	record := heuristicExtract(resumeText)
	if client != nil {
		if extracted, err := ExtractWithModel(ctx, client, resumeText); err == nil && !extracted.IsEmpty() {
			record = *extracted
		}
	}

	record.Normalize()
	if record.IsEmpty() {
		return nil, &ExtractionError{Message: "no candidate signal found in resume text"}
	}

	// Raw text attaches after the signal check so it alone never counts as a
	// successful extraction.
	record.RawText = resumeText
	if len(record.RawText) > types.RawTextLimit {
		record.RawText = record.RawText[:types.RawTextLimit]
	}

	return &record, nil
}

// ExtractWithModel asks the model to extract the candidate record. The caller
// decides what a failure means; ExtractCandidate treats any error here as a
// cue to fall back to heuristic scanning.
func ExtractWithModel(ctx context.Context, client llm.Client, resumeText string) (*types.CandidateRecord, error) {
	if client == nil {
		return nil, &APICallError{Message: "no model client configured"}
	}

	prompt := llm.BuildExtractionPrompt(llm.CandidateProfileSchema(), resumeText)
	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{
			Message: "candidate extraction call failed",
			Cause:   err,
		}
	}

	var payload struct {
		Name          string   `json:"name"`
		Email         string   `json:"email"`
		Skills        []string `json:"skills"`
		Organizations []string `json:"organizations"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &payload); err != nil {
		return nil, &ParseError{
			Message: "candidate payload is not valid JSON",
			Cause:   err,
		}
	}

	return &types.CandidateRecord{
		Name:          payload.Name,
		Email:         payload.Email,
		Skills:        payload.Skills,
		Organizations: payload.Organizations,
	}, nil
}
