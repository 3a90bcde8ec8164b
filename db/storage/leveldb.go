package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	lvlerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const defaultBloomBits = 10

// LevelDatabase keeps contract state in a goleveldb directory.
type LevelDatabase struct {
	file  string
	db    *leveldb.DB
	write *opt.WriteOptions
}

type LevelOption func(o *opt.Options, w *opt.WriteOptions)

// WithSyncWrites flushes every write and batch to disk before returning.
func WithSyncWrites() LevelOption {
	return func(o *opt.Options, w *opt.WriteOptions) { w.Sync = true }
}

// WithBlockCache sets the block cache size in MiB.
func WithBlockCache(mb int) LevelOption {
	return func(o *opt.Options, w *opt.WriteOptions) { o.BlockCacheCapacity = mb * opt.MiB }
}

// NewLevelDatabase opens or creates the database at file, recovering it when the manifest is corrupted.
func NewLevelDatabase(file string, opts ...LevelOption) (*LevelDatabase, error) {
	options := &opt.Options{Filter: filter.NewBloomFilter(defaultBloomBits)}
	write := &opt.WriteOptions{}
	for _, o := range opts {
		o(options, write)
	}
	db, err := leveldb.OpenFile(file, options)
	if _, corrupted := err.(*lvlerrors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(file, options)
	}
	if err != nil {
		return nil, err
	}
	return &LevelDatabase{file: file, db: db, write: write}, nil
}

func (db *LevelDatabase) Close() {
	_ = db.db.Close()
}

func (db *LevelDatabase) FileName() string {
	return db.file
}

func (db *LevelDatabase) Has(key []byte) (bool, error) {
	return db.db.Has(key, nil)
}

func (db *LevelDatabase) Get(key []byte) ([]byte, error) {
	data, err := db.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	return data, err
}

func (db *LevelDatabase) Put(key []byte, value []byte) error {
	return db.db.Put(key, value, db.write)
}

func (db *LevelDatabase) Delete(key []byte) error {
	return db.db.Delete(key, db.write)
}

func (db *LevelDatabase) Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool) {
	if callback == nil {
		return
	}
	it := db.db.NewIterator(&util.Range{Start: start, Limit: limit}, nil)
	defer it.Release()

	first, next := it.First, it.Next
	if reverse {
		first, next = it.Last, it.Prev
	}
	for ok := first(); ok; ok = next() {
		// goleveldb reuses key/value buffers between moves
		if !callback(copyBytes(it.Key()), copyBytes(it.Value())) {
			return
		}
	}
}

func (db *LevelDatabase) NewBatch() Batch {
	return &levelBatch{db: db, b: new(leveldb.Batch)}
}

func (db *LevelDatabase) DeleteBatch(b Batch) {}

// levelBatch applies its operations in one atomic leveldb write.
type levelBatch struct {
	db *LevelDatabase
	b  *leveldb.Batch
}

func (b *levelBatch) Write() error {
	return b.db.db.Write(b.b, b.db.write)
}

func (b *levelBatch) Reset() {
	b.b.Reset()
}

func (b *levelBatch) Put(key []byte, value []byte) error {
	b.b.Put(key, value)
	return nil
}

func (b *levelBatch) Delete(key []byte) error {
	b.b.Delete(key)
	return nil
}
