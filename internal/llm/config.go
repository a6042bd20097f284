// Package llm provides the model client used for question drafting, response
// judging, and structured extraction. Call sites name a capability tier; the
// tier-to-model mapping lives here so model upgrades touch one place.
package llm

// ModelTier names how much model capability a call needs.
type ModelTier string

const (
	// TierLite covers cheap structured tasks such as resume field extraction.
	TierLite ModelTier = "lite"
	// TierStandard covers the interview loop: drafting questions and judging
	// responses.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers analysis passes that need the strongest model.
	TierAdvanced ModelTier = "advanced"
)

// Config maps capability tiers to Gemini model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the standard Gemini lineup.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier. A tier without an explicit
// entry falls back to standard, then lite; an empty result means the config
// has no usable model at all.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}
