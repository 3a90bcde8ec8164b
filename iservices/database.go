package iservices

import (
	"github.com/coschain/mide-token/db/storage"
)

//
// This file defines interfaces of Database service.
//

var DbServerName = "db"

type IDatabaseService interface {
	// Database returns the transactional view every contract call runs against.
	Database() *storage.TransactionalDatabase
}
