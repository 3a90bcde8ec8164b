package storage

import (
	"sort"
	"sync"
)

// dbSession buffers changes over a base database until commit() or being dropped.
type dbSession struct {
	sync.RWMutex
	base Database
	puts *MemoryDatabase
	dels *MemoryDatabase
}

var sDeletedValue = []byte("<deleted>")

func newDbSession(base Database) *dbSession {
	return &dbSession{
		base: base,
		puts: NewMemoryDatabase(),
		dels: NewMemoryDatabase(),
	}
}

func (db *dbSession) Close() {

}

func (db *dbSession) commitToDbWriter(w DatabaseWriter) (err error) {
	db.RLock()
	defer db.RUnlock()

	db.puts.Iterate(nil, nil, false, func(key, value []byte) bool {
		err = w.Put(key, value)
		return err == nil
	})
	if err == nil {
		db.dels.Iterate(nil, nil, false, func(key, value []byte) bool {
			err = w.Delete(key)
			return err == nil
		})
	}
	return err
}

// commit all changes to underlying database
func (db *dbSession) commit() (err error) {
	b := db.base.NewBatch()
	defer db.base.DeleteBatch(b)
	if err = db.commitToDbWriter(b); err != nil {
		return err
	}
	return b.Write()
}

func (db *dbSession) Has(key []byte) (bool, error) {
	db.RLock()
	defer db.RUnlock()

	if found, _ := db.puts.Has(key); found {
		return true, nil
	}
	if deleted, _ := db.dels.Has(key); deleted {
		return false, nil
	}
	return db.base.Has(key)
}

func (db *dbSession) Get(key []byte) ([]byte, error) {
	db.RLock()
	defer db.RUnlock()

	if data, err := db.puts.Get(key); err == nil {
		return data, nil
	}
	if deleted, _ := db.dels.Has(key); deleted {
		return nil, ErrNotFound
	}
	return db.base.Get(key)
}

func (db *dbSession) put(key []byte, value []byte) error {
	err := db.puts.Put(key, value)
	if err == nil {
		_ = db.dels.Delete(key)
	}
	return err
}

func (db *dbSession) delete(key []byte) error {
	err := db.puts.Delete(key)
	if err == nil {
		_ = db.dels.Put(key, sDeletedValue)
	}
	return err
}

func (db *dbSession) Put(key []byte, value []byte) error {
	db.Lock()
	defer db.Unlock()
	return db.put(key, value)
}

func (db *dbSession) Delete(key []byte) error {
	db.Lock()
	defer db.Unlock()
	return db.delete(key)
}

// Iterate merges the base range with pending puts and deletions.
func (db *dbSession) Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool) {
	db.RLock()
	merged := make(map[string][]byte)
	db.base.Iterate(start, limit, false, func(key, value []byte) bool {
		merged[string(key)] = value
		return true
	})
	db.dels.Iterate(start, limit, false, func(key, value []byte) bool {
		delete(merged, string(key))
		return true
	})
	db.puts.Iterate(start, limit, false, func(key, value []byte) bool {
		merged[string(key)] = value
		return true
	})
	db.RUnlock()

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	} else {
		sort.Strings(keys)
	}
	for _, k := range keys {
		if !callback([]byte(k), merged[k]) {
			break
		}
	}
}

func (db *dbSession) NewBatch() Batch {
	return &dbSessionBatch{db: db}
}

func (db *dbSession) DeleteBatch(b Batch) {

}

// the batch
type dbSessionBatch struct {
	db      *dbSession
	changes []writeOp
}

func (b *dbSessionBatch) Write() error {
	b.db.Lock()
	defer b.db.Unlock()
	for _, op := range b.changes {
		if op.Del {
			_ = b.db.delete(op.Key)
		} else {
			_ = b.db.put(op.Key, op.Value)
		}
	}
	return nil
}

func (b *dbSessionBatch) Reset() {
	b.changes = b.changes[:0]
}

func (b *dbSessionBatch) Put(key []byte, value []byte) error {
	b.changes = append(b.changes, writeOp{
		Key:   copyBytes(key),
		Value: copyBytes(value),
		Del:   false,
	})
	return nil
}

func (b *dbSessionBatch) Delete(key []byte) error {
	b.changes = append(b.changes, writeOp{
		Key:   copyBytes(key),
		Value: nil,
		Del:   true,
	})
	return nil
}
