package vmcache

import (
	"encoding/binary"
	"math/big"
	"sync/atomic"

	"github.com/coocood/freecache"
)

// DefaultQueryCacheSize is the memory, in bytes, kept for query results.
const DefaultQueryCacheSize = 4 * 1024 * 1024

// QueryCache remembers query results per contract, message and block height.
// State only changes together with the height, so an entry never needs invalidation.
type QueryCache struct {
	cache                  *freecache.Cache
	totalQueries, totalHit int64
}

func NewQueryCache(size int) *QueryCache {
	if size <= 0 {
		size = DefaultQueryCacheSize
	}
	return &QueryCache{cache: freecache.NewCache(size)}
}

func queryKey(contract string, height uint64, msg []byte) []byte {
	key := make([]byte, 8, 8+len(contract)+1+len(msg))
	binary.BigEndian.PutUint64(key, height)
	key = append(key, contract...)
	key = append(key, 0)
	return append(key, msg...)
}

func (c *QueryCache) Get(contract string, height uint64, msg []byte) ([]byte, bool) {
	atomic.AddInt64(&c.totalQueries, 1)
	data, err := c.cache.Get(queryKey(contract, height, msg))
	if err != nil {
		return nil, false
	}
	atomic.AddInt64(&c.totalHit, 1)
	return data, true
}

// Set stores a result; entries too large for the cache are silently skipped.
func (c *QueryCache) Set(contract string, height uint64, msg, result []byte) {
	_ = c.cache.Set(queryKey(contract, height, msg), result, 0)
}

// HitRate returns cache hit rate, in range [0, 1].
func (c *QueryCache) HitRate() (rate float64) {
	a, b := atomic.LoadInt64(&c.totalHit), atomic.LoadInt64(&c.totalQueries)
	if a > 0 && b > 0 && a <= b {
		rate, _ = big.NewRat(a, b).Float64()
	}
	return
}

func (c *QueryCache) Len() int64 {
	return c.cache.EntryCount()
}
