package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/interview-scorer/internal/fetch"
)

// NoContentError indicates a page that fetched fine but reduced to no
// usable posting text after extraction and cleanup.
type NoContentError struct {
	URL string
}

func (e *NoContentError) Error() string {
	return fmt.Sprintf("no usable text content at %s", e.URL)
}

// IngestFromURL pulls a job posting through the platform-aware fetcher and
// normalizes it like any other ingested document. The fetcher handles board
// detection, noise stripping and the optional headless-browser fallback;
// this layer adds text cleanup and provenance metadata. A nil fetcher gets
// the package defaults.
func IngestFromURL(ctx context.Context, fetcher *fetch.CachedFetcher, urlStr string) (string, *Metadata, error) {
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(nil)
	}

	result, err := fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(result.Text)
	if strings.TrimSpace(cleanedText) == "" {
		return "", nil, &NoContentError{URL: urlStr}
	}

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(fetch.DetectPlatform(urlStr))

	return cleanedText, metadata, nil
}
