package storage

import "github.com/pkg/errors"

var (
	ErrNotFound = errors.New("not found")
	ErrReadOnly = errors.New("read-only database")
)

// interface for insertion and updating
type DatabasePutter interface {
	// insert a new key-value pair, or update the value if the given key already exists
	Put(key []byte, value []byte) error
}

// interface for deletion
type DatabaseDeleter interface {
	// delete the given key and its value
	// if the given key does not exist, just return nil, indicating a successful deletion without doing anything.
	Delete(key []byte) error
}

// interface for key & value query
type DatabaseGetter interface {
	// check existence of the given key
	Has(key []byte) (bool, error)

	// query the value of the given key, ErrNotFound if the key does not exist
	Get(key []byte) ([]byte, error)
}

// interface for key-space range scan
type DatabaseScanner interface {
	// iterate keys in [start, limit) in ascending order, or descending order if reverse is true.
	// a nil start is the logical minimal key that is lesser than any existing keys
	// a nil limit is the logical maximum key that is greater than any existing keys
	// iteration stops when callback returns false.
	Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool)
}

type DatabaseWriter interface {
	DatabasePutter
	DatabaseDeleter
}

// interface for transactional execution of multiple writes
type DatabaseBatcher interface {
	// create a batch which can pack DatabasePutter & DatabaseDeleter operations and execute them atomically
	NewBatch() Batch

	// release a Batch
	DeleteBatch(b Batch)
}

// interface for transaction executor
type Batch interface {
	DatabaseWriter

	// execute all batched operations
	Write() error

	// reset the batch to empty
	Reset()
}

// interface for full functional database
type Database interface {
	DatabaseGetter
	DatabaseWriter
	DatabaseScanner
	DatabaseBatcher
	Close()
}

// interface for databases supporting nested transactions
type TrxDatabase interface {
	Database

	// start a new transaction session
	BeginTransaction()

	// end current transaction session, commit or discard changes
	EndTransaction(commit bool) error

	// number of on-going transactions
	TransactionHeight() uint
}
