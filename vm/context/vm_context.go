package vmcontext

import (
	"github.com/coschain/mide-token/prototype"
)

type BlockInfo struct {
	Height  uint64              `json:"height"`
	Time    prototype.Timestamp `json:"time"`
	ChainID string              `json:"chain_id"`
}

type ContractInfo struct {
	Address string `json:"address"`
}

// Env is the chain environment of a single call.
type Env struct {
	Block    BlockInfo    `json:"block"`
	Contract ContractInfo `json:"contract"`
}

// MessageInfo carries the authenticated caller of an execute-like call.
type MessageInfo struct {
	Sender string           `json:"sender"`
	Funds  []prototype.Coin `json:"funds"`
}

// Deps is handed to read-only entry points.
type Deps struct {
	Storage ReadonlyStorage
	Api     Api
}

// DepsMut is handed to entry points allowed to write state.
type DepsMut struct {
	Storage Storage
	Api     Api
}

func (d DepsMut) AsRef() Deps {
	return Deps{Storage: d.Storage, Api: d.Api}
}

// Api exposes host-provided helpers.
type Api interface {
	// AddrValidate checks addr is a valid normalized address and returns it.
	AddrValidate(addr string) (string, error)
}

type accountApi struct{}

// NewApi returns the Api validating addresses as account names.
func NewApi() Api {
	return accountApi{}
}

func (accountApi) AddrValidate(addr string) (string, error) {
	if err := prototype.ValidAccountName(addr); err != nil {
		return "", NewGenericErr("Invalid input: " + addr + ": " + err.Error())
	}
	return addr, nil
}
