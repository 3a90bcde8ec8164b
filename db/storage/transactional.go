package storage

//
// This file implements transactional feature for any Database interface.
//

import (
	"sync"

	"github.com/pkg/errors"
)

//
// TransactionalDatabase adds transactional feature on its underlying database
//
type TransactionalDatabase struct {
	db   Database      // underlying db
	trx  []*dbSession  // current transaction stack
	lock *sync.RWMutex // the lock
}

func NewTransactionalDatabase(db Database) *TransactionalDatabase {
	return &TransactionalDatabase{
		db:   db,
		lock: new(sync.RWMutex),
	}
}

// get the top-most transaction db
func (db *TransactionalDatabase) topTrx() *dbSession {
	if trxCount := len(db.trx); trxCount > 0 {
		return db.trx[trxCount-1]
	}
	return nil
}

// reads and writes both go to the top-most transaction
func (db *TransactionalDatabase) current() Database {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if top := db.topTrx(); top != nil {
		return top
	}
	return db.db
}

// start a transaction session
func (db *TransactionalDatabase) BeginTransaction() {
	db.lock.Lock()
	defer db.lock.Unlock()

	// transactions are stacked.
	// bottom transaction is the underlying database of top transaction
	var base Database = db.db
	if top := db.topTrx(); top != nil {
		base = top
	}
	db.trx = append(db.trx, newDbSession(base))
}

// end a transaction session. commit or discard changes
func (db *TransactionalDatabase) EndTransaction(commit bool) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	trx := db.topTrx()
	if trx == nil {
		return errors.New("unexpected EndTransaction")
	}
	db.trx = db.trx[:len(db.trx)-1]
	if commit {
		return trx.commit()
	}
	return nil
}

func (db *TransactionalDatabase) TransactionHeight() uint {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return uint(len(db.trx))
}

func (db *TransactionalDatabase) Has(key []byte) (bool, error) {
	return db.current().Has(key)
}

func (db *TransactionalDatabase) Get(key []byte) ([]byte, error) {
	return db.current().Get(key)
}

func (db *TransactionalDatabase) Put(key []byte, value []byte) error {
	return db.current().Put(key, value)
}

func (db *TransactionalDatabase) Delete(key []byte) error {
	return db.current().Delete(key)
}

func (db *TransactionalDatabase) Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool) {
	db.current().Iterate(start, limit, reverse, callback)
}

func (db *TransactionalDatabase) NewBatch() Batch {
	return db.current().NewBatch()
}

func (db *TransactionalDatabase) DeleteBatch(b Batch) {
	db.current().DeleteBatch(b)
}

// Close drops on-going transactions. The underlying database is left open.
func (db *TransactionalDatabase) Close() {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.trx = nil
}
