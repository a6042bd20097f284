// Package types provides type definitions for structured data used throughout the interview-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"strings"
)

// RawTextLimit is the maximum number of characters of resume raw text carried
// on a CandidateRecord. Longer text is truncated at extraction time so profile
// embeddings stay bounded and reproducible.
const RawTextLimit = 1000

// CandidateRecord represents the structured candidate data produced by resume extraction
type CandidateRecord struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Skills        []string `json:"skills"`
	Organizations []string `json:"organizations"`
	RawText       string   `json:"raw_text,omitempty"`
}

// Normalize canonicalizes the record in place: skills and organizations are
// trimmed, lowercased, deduplicated and sorted, and raw text is truncated to
// RawTextLimit. Matching depends on this canonical form being stable.
func (c *CandidateRecord) Normalize() {
	c.Skills = normalizeSet(c.Skills)
	c.Organizations = normalizeSet(c.Organizations)
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if len(c.RawText) > RawTextLimit {
		c.RawText = c.RawText[:RawTextLimit]
	}
}

// IsEmpty reports whether the record carries no usable signal at all.
func (c *CandidateRecord) IsEmpty() bool {
	return len(c.Skills) == 0 && len(c.Organizations) == 0 &&
		strings.TrimSpace(c.RawText) == "" && c.Name == "" && c.Email == ""
}

func normalizeSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
