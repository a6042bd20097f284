package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes one ingested document: where it came from and a
// content hash for change detection across re-fetches.
type Metadata struct {
	URL       string `json:"url,omitempty"`
	Source    string `json:"source,omitempty"`   // local file path when read from disk
	Format    string `json:"format,omitempty"`   // pdf, txt or md
	Timestamp string `json:"timestamp"`          // RFC3339
	Hash      string `json:"hash"`               // SHA256 hex digest of the cleaned text
	Platform  string `json:"platform,omitempty"` // detected job board platform
}

// NewMetadata stamps cleaned content with its hash and the current time.
func NewMetadata(content string, url string) *Metadata {
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
