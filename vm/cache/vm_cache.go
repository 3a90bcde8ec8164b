package vmcache

import (
	"github.com/coschain/mide-token/db/storage"
	"github.com/hashicorp/golang-lru"
)

const DefaultLruSize = 100

// ContractNamespace is the key prefix owning a contract's state in the shared database.
func ContractNamespace(contract string) string {
	return "c/" + contract
}

// StorageCache keeps the namespaced views of recently used contracts.
// Views forward to the shared database, so a cached view is never stale.
type StorageCache struct {
	db    storage.Database
	cache *lru.Cache
}

func NewStorageCache(db storage.Database, size int) (*StorageCache, error) {
	if size <= 0 {
		size = DefaultLruSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &StorageCache{db: db, cache: cache}, nil
}

func (c *StorageCache) Fetch(contract string) storage.Database {
	if v, ok := c.cache.Get(contract); ok {
		return v.(storage.Database)
	}
	ns := storage.NewNamespace(c.db, ContractNamespace(contract))
	c.cache.Add(contract, ns)
	return ns
}

func (c *StorageCache) Contains(contract string) bool {
	return c.cache.Contains(contract)
}

func (c *StorageCache) Remove(contract string) {
	c.cache.Remove(contract)
}

func (c *StorageCache) Len() int {
	return c.cache.Len()
}
