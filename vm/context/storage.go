package vmcontext

import (
	"github.com/coschain/mide-token/db/storage"
)

type ReadonlyStorage interface {
	// Get returns nil, nil for a missing key.
	Get(key []byte) ([]byte, error)

	// Range visits keys in [start, end), nil bounds being open, until callback returns false.
	Range(start, end []byte, reverse bool, callback func(key, value []byte) bool)
}

type Storage interface {
	ReadonlyStorage
	Set(key, value []byte) error
	Remove(key []byte) error
}

type dbStorage struct {
	db storage.Database
}

// NewStorage exposes a database as contract storage.
func NewStorage(db storage.Database) Storage {
	return &dbStorage{db: db}
}

func (s *dbStorage) Get(key []byte) ([]byte, error) {
	data, err := s.db.Get(key)
	if err == storage.ErrNotFound {
		return nil, nil
	}
	return data, err
}

func (s *dbStorage) Range(start, end []byte, reverse bool, callback func(key, value []byte) bool) {
	s.db.Iterate(start, end, reverse, callback)
}

func (s *dbStorage) Set(key, value []byte) error {
	return s.db.Put(key, value)
}

func (s *dbStorage) Remove(key []byte) error {
	return s.db.Delete(key)
}
