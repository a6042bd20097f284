package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-scorer/internal/fetch"
	"github.com/jonathan/interview-scorer/internal/ingestion"
	"github.com/jonathan/interview-scorer/internal/interview"
	"github.com/jonathan/interview-scorer/internal/matching"
	"github.com/jonathan/interview-scorer/internal/parsing"
)

func TestErrValidation_ErrorWithField(t *testing.T) {
	err := &ErrValidation{Field: "QuestionID", Message: "required"}
	assert.Equal(t, "validation error: QuestionID - required", err.Error())
}

func TestErrValidation_ErrorWithoutField(t *testing.T) {
	err := &ErrValidation{Message: "invalid request body"}
	assert.Equal(t, "validation error: invalid request body", err.Error())
}

func TestValidationError_ExtractsFirstField(t *testing.T) {
	type probe struct {
		Name string `validate:"required"`
		URL  string `validate:"omitempty,url"`
	}

	err := validator.New().Struct(probe{URL: "not-a-url"})
	require.Error(t, err)

	converted := validationError(err)
	var validation *ErrValidation
	require.ErrorAs(t, converted, &validation)
	assert.Equal(t, "Name", validation.Field)
	assert.Equal(t, "required", validation.Message)
}

func TestValidationError_NonValidatorError(t *testing.T) {
	converted := validationError(errors.New("boom"))

	var validation *ErrValidation
	require.ErrorAs(t, converted, &validation)
	assert.Equal(t, "invalid request", validation.Message)
}

func TestHTTPStatus_SessionNotFound(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(interview.ErrSessionNotFound))
}

func TestHTTPStatus_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("completing session: %w", interview.ErrSessionCompleted)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
}

func TestHTTPStatus_NoResponses(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatus(interview.ErrNoResponses))
}

func TestHTTPStatus_QuestionNotFound(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(interview.ErrQuestionNotFound))
}

func TestHTTPStatus_Validation(t *testing.T) {
	err := &ErrValidation{Field: "job_description", Message: "required"}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_UnsupportedFormat(t *testing.T) {
	err := &ingestion.UnsupportedFormatError{Extension: ".docx"}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_ExtractionError(t *testing.T) {
	err := &parsing.ExtractionError{Message: "resume text is empty"}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_DocumentTooLarge(t *testing.T) {
	err := &ingestion.DocumentTooLargeError{Size: 99, Limit: 10}
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(err))
}

func TestHTTPStatus_NoContent(t *testing.T) {
	err := &ingestion.NoContentError{URL: "https://example.com/job"}
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))
}

func TestHTTPStatus_MatchComputation(t *testing.T) {
	err := &matching.ComputationError{Stage: "job embedding", Cause: errors.New("provider down")}
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(err))
}

func TestHTTPStatus_FetchError(t *testing.T) {
	err := &fetch.Error{URL: "https://example.com/job", Message: "request failed"}
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(err))
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
