package storage

// readOnlyDatabase rejects every write to the wrapped database.
type readOnlyDatabase struct {
	db Database
}

func NewReadOnlyDatabase(db Database) Database {
	return &readOnlyDatabase{db: db}
}

func (ro *readOnlyDatabase) Close() {

}

func (ro *readOnlyDatabase) Has(key []byte) (bool, error) {
	return ro.db.Has(key)
}

func (ro *readOnlyDatabase) Get(key []byte) ([]byte, error) {
	return ro.db.Get(key)
}

func (ro *readOnlyDatabase) Put(key []byte, value []byte) error {
	return ErrReadOnly
}

func (ro *readOnlyDatabase) Delete(key []byte) error {
	return ErrReadOnly
}

func (ro *readOnlyDatabase) Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool) {
	ro.db.Iterate(start, limit, reverse, callback)
}

func (ro *readOnlyDatabase) NewBatch() Batch {
	return readOnlyBatch{}
}

func (ro *readOnlyDatabase) DeleteBatch(b Batch) {

}

type readOnlyBatch struct{}

func (readOnlyBatch) Put(key []byte, value []byte) error { return ErrReadOnly }
func (readOnlyBatch) Delete(key []byte) error            { return ErrReadOnly }
func (readOnlyBatch) Write() error                       { return ErrReadOnly }
func (readOnlyBatch) Reset()                             {}
