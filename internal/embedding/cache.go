package embedding

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheCapacity is the number of vectors kept in memory.
const DefaultCacheCapacity = 512

// CacheOptions configures the embedding cache.
type CacheOptions struct {
	// Dir enables disk persistence of vectors when non-empty.
	Dir string
	// Capacity is the in-memory LRU size. Zero or negative means
	// DefaultCacheCapacity.
	Capacity int
	Logger   *zap.Logger
}

// DefaultCacheOptions returns sensible defaults (memory only).
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{Capacity: DefaultCacheCapacity}
}

// Cache wraps an Embedder with an in-memory LRU layer and optional disk
// persistence. Concurrent requests for the same text are collapsed into a
// single backend call.
type Cache struct {
	embedder Embedder
	dir      string
	capacity int
	logger   *zap.Logger

	mu    sync.Mutex
	ll    *list.List // front = most recently used
	items map[string]*list.Element

	group singleflight.Group
}

type cacheEntry struct {
	key    string
	values []float32
}

// NewCache creates a cache in front of embedder.
func NewCache(embedder Embedder, opts CacheOptions) *Cache {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCacheCapacity
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Cache{
		embedder: embedder,
		dir:      opts.Dir,
		capacity: opts.Capacity,
		logger:   opts.Logger,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

// ModelID identifies the underlying model.
func (c *Cache) ModelID() string {
	return c.embedder.ModelID()
}

// Embed returns the embedding for text, serving repeats from cache.
// Backend failures are returned as-is and never cached.
func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(c.embedder.ModelID(), text)

	if values, ok := c.lookup(key); ok {
		return values, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent caller may have stored the vector already.
		if values, ok := c.lookup(key); ok {
			return values, nil
		}

		if values, ok := c.readDisk(key); ok {
			c.store(key, values)
			return values, nil
		}

		values, err := c.embedder.Embed(ctx, text)
		if err != nil {
			return nil, err
		}

		c.store(key, values)
		c.writeDisk(key, values)
		return values, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]float32), nil
}

func (c *Cache) lookup(key string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}

	c.ll.MoveToFront(elem)
	return elem.Value.(*cacheEntry).values, true
}

func (c *Cache) store(key string, values []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.ll.MoveToFront(elem)
		elem.Value.(*cacheEntry).values = values
		return
	}

	elem := c.ll.PushFront(&cacheEntry{key: key, values: values})
	c.items[key] = elem

	for c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.ll.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

// diskRecord is the JSON layout of a persisted vector.
type diskRecord struct {
	ModelID string    `json:"model_id"`
	Values  []float32 `json:"values"`
}

func (c *Cache) readDisk(key string) ([]float32, bool) {
	if c.dir == "" {
		return nil, false
	}

	data, err := os.ReadFile(c.diskPath(key))
	if err != nil {
		return nil, false
	}

	var record diskRecord
	if err := json.Unmarshal(data, &record); err != nil {
		c.logger.Warn("discarding unreadable cached embedding",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if len(record.Values) == 0 {
		return nil, false
	}

	return record.Values, true
}

func (c *Cache) writeDisk(key string, values []float32) {
	if c.dir == "" {
		return
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		c.logger.Warn("cannot create embedding cache dir",
			zap.String("dir", c.dir), zap.Error(err))
		return
	}

	data, err := json.Marshal(diskRecord{ModelID: c.embedder.ModelID(), Values: values})
	if err != nil {
		return
	}

	if err := os.WriteFile(c.diskPath(key), data, 0o644); err != nil {
		c.logger.Warn("cannot persist embedding",
			zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) diskPath(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// cacheKey derives a stable key from the model and input text.
func cacheKey(modelID, text string) string {
	sum := sha256.Sum256([]byte(modelID + "\n" + text))
	return hex.EncodeToString(sum[:])
}
