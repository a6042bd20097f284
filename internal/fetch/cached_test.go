package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCountingServer(delay time.Duration) (*httptest.Server, *int32) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requests, 1)
		if delay > 0 {
			time.Sleep(delay)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><main><h1>Posting</h1><p>Go experience required.</p></main></body></html>"))
	}))
	return server, &requests
}

func TestDefaultCachedFetcherConfig(t *testing.T) {
	config := DefaultCachedFetcherConfig()

	require.NotNil(t, config)
	assert.Equal(t, DefaultCacheTTL, config.CacheTTL)
	assert.Equal(t, DefaultCacheSize, config.CacheSize)
	assert.False(t, config.SkipCache)
	assert.NotNil(t, config.Options)
}

func TestNewCachedFetcher_NilConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil)

	require.NotNil(t, fetcher)
	assert.NotZero(t, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
	assert.NotNil(t, fetcher.pages)
}

func TestNewCachedFetcher_EmptyConfig(t *testing.T) {
	fetcher := NewCachedFetcher(&CachedFetcherConfig{})

	require.NotNil(t, fetcher)
	// Zero values fall back to defaults.
	assert.Equal(t, DefaultCacheTTL, fetcher.cacheTTL)
	assert.Equal(t, DefaultCacheSize, fetcher.maxPages)
	assert.NotNil(t, fetcher.options)
}

func TestCachedFetcher_SecondFetchHitsCache(t *testing.T) {
	server, requests := newCountingServer(0)
	defer server.Close()

	fetcher := NewCachedFetcher(nil)

	first, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Contains(t, first.Text, "Go experience required")

	second, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.HTML, second.HTML)

	assert.Equal(t, int32(1), atomic.LoadInt32(requests))
}

func TestCachedFetcher_SkipCacheAlwaysFetches(t *testing.T) {
	server, requests := newCountingServer(0)
	defer server.Close()

	fetcher := NewCachedFetcher(&CachedFetcherConfig{SkipCache: true})

	for i := 0; i < 2; i++ {
		result, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.False(t, result.FromCache)
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(requests))
}

func TestCachedFetcher_ExpiredEntryRefetches(t *testing.T) {
	server, requests := newCountingServer(0)
	defer server.Close()

	fetcher := NewCachedFetcher(&CachedFetcherConfig{CacheTTL: 10 * time.Millisecond})

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, int32(2), atomic.LoadInt32(requests))
}

func TestCachedFetcher_InvalidateCache(t *testing.T) {
	server, requests := newCountingServer(0)
	defer server.Close()

	fetcher := NewCachedFetcher(nil)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	fetcher.InvalidateCache(server.URL)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, int32(2), atomic.LoadInt32(requests))
}

func TestCachedFetcher_ErrorNotCached(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	_, err = fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&requests))
}

func TestCachedFetcher_ConcurrentFetchesCollapse(t *testing.T) {
	server, requests := newCountingServer(100 * time.Millisecond)
	defer server.Close()

	fetcher := NewCachedFetcher(nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := fetcher.Fetch(context.Background(), server.URL)
			assert.NoError(t, err)
			assert.NotNil(t, result)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(requests))
}

func TestCachedFetcher_FetchMultiplePreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "<html><body><main>page %s</main></body></html>", r.URL.Path)
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil)
	urls := []string{
		server.URL + "/a",
		"not-a-valid-url",
		server.URL + "/b",
	}

	results, errs := fetcher.FetchMultiple(context.Background(), urls)

	require.Len(t, results, 3)
	require.Len(t, errs, 3)

	require.NotNil(t, results[0])
	assert.Contains(t, results[0].Text, "page /a")
	assert.NoError(t, errs[0])

	assert.Nil(t, results[1])
	assert.Error(t, errs[1])

	require.NotNil(t, results[2])
	assert.Contains(t, results[2].Text, "page /b")
	assert.NoError(t, errs[2])
}

func TestCachedFetcher_EvictsWhenFull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "<html><body><main>page %s</main></body></html>", r.URL.Path)
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(&CachedFetcherConfig{CacheSize: 2})

	for _, path := range []string{"/a", "/b", "/c"} {
		_, err := fetcher.Fetch(context.Background(), server.URL+path)
		require.NoError(t, err)
	}

	fetcher.mu.RLock()
	defer fetcher.mu.RUnlock()
	assert.Len(t, fetcher.pages, 2)
}
