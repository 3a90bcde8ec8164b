package storage

import (
	"github.com/coschain/mide-token/node"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DatabaseService owns the node's contract state database.
type DatabaseService struct {
	path   string
	dbType string
	log    *logrus.Logger

	base Database
	db   *TransactionalDatabase
}

func NewDatabaseService(ctx *node.ServiceContext) (*DatabaseService, error) {
	cfg := ctx.Config()
	s := &DatabaseService{dbType: cfg.DBType, path: cfg.NodeDB()}
	switch s.dbType {
	case node.DBTypeLevel:
		if s.path == "" {
			return nil, errors.New("leveldb needs a data directory")
		}
	case node.DBTypeMemory, "":
		s.dbType = node.DBTypeMemory
	default:
		return nil, errors.Errorf("unknown database type %q", cfg.DBType)
	}
	return s, nil
}

func (s *DatabaseService) Start(n *node.Node) error {
	s.log = n.Log
	if s.dbType == node.DBTypeMemory {
		s.base = NewMemoryDatabase()
	} else {
		ldb, err := NewLevelDatabase(s.path, WithSyncWrites())
		if err != nil {
			return errors.Wrapf(err, "open %s", s.path)
		}
		s.base = ldb
	}
	s.db = NewTransactionalDatabase(s.base)
	s.log.WithFields(logrus.Fields{"type": s.dbType, "path": s.path}).Info("database opened")
	return nil
}

func (s *DatabaseService) Stop() error {
	if s.db != nil {
		s.db.Close()
		s.base.Close()
		s.db, s.base = nil, nil
	}
	return nil
}

func (s *DatabaseService) Database() *TransactionalDatabase {
	return s.db
}
