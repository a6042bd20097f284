package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-scorer/internal/fetch"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name   string
		urlStr string
	}{
		{"empty URL", ""},
		{"no scheme", "example.com"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := IngestFromURL(context.Background(), nil, tt.urlStr)
			require.Error(t, err)

			var fetchErr *fetch.Error
			assert.ErrorAs(t, err, &fetchErr)
		})
	}
}

func TestIngestFromURL_CleansExtractedText(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<body>
<nav>Nav</nav>
<main>
<h1>Job Title</h1>
<p>Job description</p>
</main>
<footer>Footer</footer>
</body>
</html>`)

	cleanedText, metadata, err := IngestFromURL(context.Background(), nil, server.URL)
	require.NoError(t, err)

	assert.Contains(t, cleanedText, "Job Title")
	assert.Contains(t, cleanedText, "Job description")
	assert.NotContains(t, cleanedText, "Nav")
	assert.NotContains(t, cleanedText, "Footer")

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
	assert.Len(t, metadata.Hash, 64)
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), nil, server.URL)
	require.Error(t, err)

	var fetchErr *fetch.Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestIngestFromURL_EmptyPage(t *testing.T) {
	server := serveHTML(t, "<html><body><main></main></body></html>")

	_, _, err := IngestFromURL(context.Background(), nil, server.URL)
	require.Error(t, err)

	var noContent *NoContentError
	require.ErrorAs(t, err, &noContent)
	assert.Equal(t, server.URL, noContent.URL)
}

func TestIngestFromURL_SetsPlatformMetadata(t *testing.T) {
	server := serveHTML(t, "<html><body><main><p>Some job content for the page.</p></main></body></html>")

	_, metadata, err := IngestFromURL(context.Background(), nil, server.URL)
	require.NoError(t, err)

	// Local test server is no known job board.
	assert.Equal(t, string(fetch.PlatformUnknown), metadata.Platform)
}

func TestIngestFromURL_ReusesFetcherCache(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><main><p>Posting body text.</p></main></body></html>"))
	}))
	defer server.Close()

	fetcher := fetch.NewCachedFetcher(nil)
	_, _, err := IngestFromURL(context.Background(), fetcher, server.URL)
	require.NoError(t, err)
	_, _, err = IngestFromURL(context.Background(), fetcher, server.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
}

func TestIngestFromURL_WithTestFixture(t *testing.T) {
	htmlContent, err := os.ReadFile("testdata/sample_job_html.html")
	require.NoError(t, err)

	server := serveHTML(t, string(htmlContent))

	cleanedText, metadata, err := IngestFromURL(context.Background(), nil, server.URL)
	require.NoError(t, err)

	assert.NotNil(t, metadata)
	assert.Contains(t, cleanedText, "Senior Software Engineer")
	assert.Contains(t, cleanedText, "About the Role")
	assert.Contains(t, cleanedText, "Requirements")
}
