package contract

import (
	"encoding/json"

	"github.com/coschain/mide-token/cw2"
	"github.com/coschain/mide-token/cw20"
	vmcontext "github.com/coschain/mide-token/vm/context"
	"github.com/pkg/errors"
)

const (
	ContractName    = "crates.io:mide"
	ContractVersion = "0.1.0"
)

var ErrEmptyMessage = errors.New("message carries no variant")

// MigrateMsg carries no fields; any well-formed message is accepted.
type MigrateMsg struct{}

// Contract is the token contract: a version marker, a no-op migration and forwarding to a Library.
type Contract struct {
	lib Library
}

func New(lib Library) *Contract {
	return &Contract{lib: lib}
}

// NewStandard returns the contract backed by the cw20 package.
func NewStandard() *Contract {
	return New(StandardLibrary{})
}

func (c *Contract) Instantiate(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg cw20.InstantiateMsg) (*vmcontext.Response, error) {
	if err := cw2.SetContractVersion(deps.Storage, ContractName, ContractVersion); err != nil {
		return nil, err
	}
	return c.lib.Instantiate(deps, env, info, msg)
}

func (c *Contract) Execute(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg cw20.ExecuteMsg) (*vmcontext.Response, error) {
	if msg.Variant == nil {
		return nil, ErrEmptyMessage
	}
	return msg.Variant.Accept(&executeDispatcher{lib: c.lib, deps: deps, env: env, info: info})
}

func (c *Contract) Query(deps vmcontext.Deps, env vmcontext.Env, msg cw20.QueryMsg) ([]byte, error) {
	if msg.Variant == nil {
		return nil, ErrEmptyMessage
	}
	res, err := msg.Variant.Accept(&queryDispatcher{lib: c.lib, deps: deps})
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(res)
	if err != nil {
		return nil, vmcontext.NewSerializeErr(msg.Variant.Tag(), err)
	}
	return data, nil
}

func (c *Contract) Migrate(deps vmcontext.DepsMut, env vmcontext.Env, msg MigrateMsg) (*vmcontext.Response, error) {
	return vmcontext.NewResponse(), nil
}
