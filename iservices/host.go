package iservices

import (
	"github.com/coschain/mide-token/cw2"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

var HostServerName = "host"

// IHost runs contract entry points against the node's database.
type IHost interface {
	Instantiate(sender string, msg []byte) (string, *vmcontext.Response, error)
	Execute(contract, sender string, msg []byte) (*vmcontext.Response, error)
	Query(contract string, msg []byte) ([]byte, error)
	Migrate(contract string, msg []byte) (*vmcontext.Response, error)
	ContractVersion(contract string) (*cw2.ContractVersion, error)
	Contracts() ([]string, error)
	Block() vmcontext.BlockInfo
}
