package fetch

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL bounds how long a fetched page stays reusable.
const DefaultCacheTTL = 15 * time.Minute

// DefaultCacheSize caps the number of pages held in memory.
const DefaultCacheSize = 128

// FetchConcurrency limits parallel fetches in FetchMultiple.
const FetchConcurrency = 4

// CachedFetcher wraps URL fetching with an in-memory TTL cache. Job
// postings rarely change within a session's lifetime, so repeated match
// requests against the same posting reuse the first fetch.
type CachedFetcher struct {
	options   *Options
	cacheTTL  time.Duration
	maxPages  int
	skipCache bool // For testing or forcing fresh fetches
	renderSPA bool

	group singleflight.Group

	mu    sync.RWMutex
	pages map[string]*cachedPage
}

type cachedPage struct {
	result    Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
// RenderSPA enables the headless-browser fallback for pages whose static
// HTML extracts to almost no text; it needs Chrome on the host and is off
// by default.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	CacheSize int
	SkipCache bool
	RenderSPA bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultCacheTTL,
		CacheSize: DefaultCacheSize,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}
	return &CachedFetcher{
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		maxPages:  config.CacheSize,
		skipCache: config.SkipCache,
		renderSPA: config.RenderSPA,
		pages:     make(map[string]*cachedPage),
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool      // Whether this result came from cache
	FetchedAt time.Time // When the underlying fetch happened
}

// Fetch retrieves a URL, using cache if available and fresh.
// Concurrent fetches of the same URL collapse into a single request.
// The result's Text field holds platform-aware extracted body text.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if page := f.lookup(urlStr); page != nil {
			result := page.result
			return &CachedResult{Result: &result, FromCache: true, FetchedAt: page.fetchedAt}, nil
		}
	}

	v, err, _ := f.group.Do(urlStr, func() (interface{}, error) {
		result, err := URL(ctx, urlStr, f.options)
		if err != nil {
			return nil, err
		}

		platform := DetectPlatform(urlStr)
		text, _ := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)

		// Near-empty static text means a client-rendered posting. Render
		// when enabled; a failed render keeps the static result.
		if f.renderSPA && NeedsRendering(text) {
			if html, renderErr := Render(ctx, urlStr, nil); renderErr == nil {
				rendered, extractErr := ExtractMainText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
				if extractErr == nil && len(rendered) > len(text) {
					result.HTML = html
					text = rendered
				}
			}
		}
		result.Text = text

		page := &cachedPage{result: *result, fetchedAt: time.Now()}
		if !f.skipCache {
			f.store(urlStr, page)
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}

	page := v.(*cachedPage)
	result := page.result
	return &CachedResult{Result: &result, FromCache: false, FetchedAt: page.fetchedAt}, nil
}

// FetchMultiple fetches multiple URLs concurrently with caching.
// Results keep the input order. Failed fetches are nil in the result
// slice with the error at the matching index.
func (f *CachedFetcher) FetchMultiple(ctx context.Context, urls []string) ([]*CachedResult, []error) {
	results := make([]*CachedResult, len(urls))
	errs := make([]error, len(urls))

	g := new(errgroup.Group)
	g.SetLimit(FetchConcurrency)
	for i, urlStr := range urls {
		g.Go(func() error {
			result, err := f.Fetch(ctx, urlStr)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}

// InvalidateCache drops a cached page, forcing a re-fetch on next request.
func (f *CachedFetcher) InvalidateCache(urlStr string) {
	f.mu.Lock()
	delete(f.pages, urlStr)
	f.mu.Unlock()
}

func (f *CachedFetcher) lookup(urlStr string) *cachedPage {
	f.mu.RLock()
	page, ok := f.pages[urlStr]
	f.mu.RUnlock()
	if !ok || time.Since(page.fetchedAt) > f.cacheTTL {
		return nil
	}
	return page
}

func (f *CachedFetcher) store(urlStr string, page *cachedPage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pages) >= f.maxPages {
		f.evictLocked()
	}
	f.pages[urlStr] = page
}

// evictLocked drops expired pages, then the oldest page if still full.
func (f *CachedFetcher) evictLocked() {
	var oldestKey string
	var oldestAt time.Time
	for key, page := range f.pages {
		if time.Since(page.fetchedAt) > f.cacheTTL {
			delete(f.pages, key)
			continue
		}
		if oldestKey == "" || page.fetchedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = page.fetchedAt
		}
	}
	if len(f.pages) >= f.maxPages && oldestKey != "" {
		delete(f.pages, oldestKey)
	}
}
