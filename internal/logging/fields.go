package logging

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider is the structured log field key for the LLM provider name.
	FieldProvider = "llm_provider"
	// FieldModel is the structured log field key for the LLM model identifier.
	FieldModel = "llm_model"
	// FieldSession is the structured log field key for the interview session ID.
	FieldSession = "session_id"
	// FieldCategory is the structured log field key for the question category.
	FieldCategory = "category"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ModelFields returns standard zap fields that describe the LLM provider and model.
// Empty values are ignored to keep log entries compact when information is missing.
func ModelFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// SessionFields returns standard zap fields that identify an interview session
// and, when known, the category of the question being handled.
func SessionFields(sessionID, category string) []zap.Field {
	return StringFields(
		StringField{Key: FieldSession, Value: sessionID},
		StringField{Key: FieldCategory, Value: category},
	)
}

// WithSession attaches the session fields to the provided logger.
// If the logger is nil, a no-op logger is created to avoid panics.
func WithSession(logger *zap.Logger, sessionID, category string) *zap.Logger {
	return WithFields(logger, SessionFields(sessionID, category)...)
}
