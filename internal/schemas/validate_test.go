package schemas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "score"],
	"properties": {
		"name": {"type": "string"},
		"score": {"type": "number", "minimum": 0, "maximum": 10},
		"profile": {
			"type": "object",
			"properties": {
				"years": {"type": "integer"}
			}
		}
	}
}`

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "person.schema.json", personSchema)
	docPath := writeTempFile(t, dir, "doc.json", `{"name": "Ada", "score": 7.5}`)

	err := ValidateJSON(schemaPath, docPath)
	assert.NoError(t, err)
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "person.schema.json", personSchema)
	docPath := writeTempFile(t, dir, "doc.json", `{"name": "Ada"}`)

	err := ValidateJSON(schemaPath, docPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "score")
}

func TestValidateJSON_TypeMismatch(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "person.schema.json", personSchema)
	docPath := writeTempFile(t, dir, "doc.json", `{"name": 42, "score": 7}`)

	err := ValidateJSON(schemaPath, docPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSON_NestedFieldPath(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "person.schema.json", personSchema)
	docPath := writeTempFile(t, dir, "doc.json", `{"name": "Ada", "score": 7, "profile": {"years": "eight"}}`)

	err := ValidateJSON(schemaPath, docPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "profile.years", validationErr.Errors[0].Field)
}

func TestValidateJSON_SchemaFileNotFound(t *testing.T) {
	dir := t.TempDir()
	docPath := writeTempFile(t, dir, "doc.json", `{"name": "Ada", "score": 7}`)

	err := ValidateJSON(filepath.Join(dir, "missing.schema.json"), docPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSON_DocumentFileNotFound(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "person.schema.json", personSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "broken.schema.json", `{"type": "object",`)
	docPath := writeTempFile(t, dir, "doc.json", `{"name": "Ada"}`)

	err := ValidateJSON(schemaPath, docPath)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.NotNil(t, loadErr.Unwrap())
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "person.schema.json", personSchema)
	docPath := writeTempFile(t, dir, "doc.json", `{"name": "Ada"`)

	err := ValidateJSON(schemaPath, docPath)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"name": "Ada", "score": 9}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"name": "Ada", "score": 11}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "score", validationErr.Errors[0].Field)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(personSchema, `not json`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "(string schema)", loadErr.Path)
}

func TestValidationError_ErrorFormat(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "score", Message: "Must be less than or equal to 10"},
	}}

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "validation failed:\n"))
	assert.Contains(t, msg, "1. name: name is required")
	assert.Contains(t, msg, "2. score: Must be less than or equal to 10")
}

func TestSchemaLoadError_WithAndWithoutCause(t *testing.T) {
	withCause := &SchemaLoadError{Path: "/tmp/s.json", Message: "bad", Cause: os.ErrNotExist}
	assert.Contains(t, withCause.Error(), "/tmp/s.json")
	assert.Contains(t, withCause.Error(), "file does not exist")
	assert.ErrorIs(t, withCause, os.ErrNotExist)

	withoutCause := &SchemaLoadError{Path: "/tmp/s.json", Message: "bad"}
	assert.Equal(t, "failed to load schema /tmp/s.json: bad", withoutCause.Error())
}

func TestResolveSchemaPath_FindsShippedSchemas(t *testing.T) {
	path := ResolveSchemaPath(filepath.Join("schemas", "candidate.schema.json"))
	require.NotEmpty(t, path, "shipped schema should resolve from the package directory")
	assert.True(t, filepath.IsAbs(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	path := ResolveSchemaPath(filepath.Join("schemas", "no_such.schema.json"))
	assert.Empty(t, path)
}

func TestValidateJSON_ShippedEvaluationSchemaLoads(t *testing.T) {
	schemaPath := ResolveSchemaPath(filepath.Join("schemas", "evaluation.schema.json"))
	require.NotEmpty(t, schemaPath)

	dir := t.TempDir()
	docPath := writeTempFile(t, dir, "doc.json", `{}`)

	err := ValidateJSON(schemaPath, docPath)
	require.Error(t, err, "empty document must miss required evaluation fields")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}
