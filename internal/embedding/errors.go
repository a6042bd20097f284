package embedding

import "fmt"

// ProviderError represents a failure of the embedding backend.
// Callers must surface it as "not computed", never as a zero similarity.
type ProviderError struct {
	Model   string
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding error for model %s: %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding error for model %s: %s", e.Model, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
