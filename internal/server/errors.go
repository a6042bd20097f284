// Package server provides the HTTP REST API for the interview scorer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-scorer/internal/fetch"
	"github.com/jonathan/interview-scorer/internal/ingestion"
	"github.com/jonathan/interview-scorer/internal/interview"
	"github.com/jonathan/interview-scorer/internal/matching"
	"github.com/jonathan/interview-scorer/internal/parsing"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// validationError converts validator output into an ErrValidation carrying
// the first failed field.
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Message: "invalid request"}
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var unsupported *ingestion.UnsupportedFormatError
	var tooLarge *ingestion.DocumentTooLargeError
	var noContent *ingestion.NoContentError
	var extraction *parsing.ExtractionError
	var computation *matching.ComputationError
	var fetchErr *fetch.Error

	switch {
	case errors.Is(err, interview.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, interview.ErrSessionCompleted), errors.Is(err, interview.ErrNoResponses):
		return http.StatusConflict
	case errors.Is(err, interview.ErrQuestionNotFound):
		return http.StatusBadRequest
	case errors.As(err, &validation), errors.As(err, &unsupported), errors.As(err, &extraction):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &noContent):
		return http.StatusUnprocessableEntity
	case errors.As(err, &computation), errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
