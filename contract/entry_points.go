package contract

import (
	"encoding/json"

	"github.com/coschain/mide-token/cw20"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

// EntryPoints exposes a Contract through the host calling convention of raw JSON messages.
type EntryPoints struct {
	*Contract
}

func NewEntryPoints(c *Contract) *EntryPoints {
	return &EntryPoints{Contract: c}
}

func decode(data []byte, target string, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return vmcontext.NewParseErr(target, err)
	}
	return nil
}

func (e *EntryPoints) InstantiateRaw(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg []byte) (*vmcontext.Response, error) {
	var m cw20.InstantiateMsg
	if err := decode(msg, "cw20::InstantiateMsg", &m); err != nil {
		return nil, err
	}
	return e.Instantiate(deps, env, info, m)
}

func (e *EntryPoints) ExecuteRaw(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg []byte) (*vmcontext.Response, error) {
	var m cw20.ExecuteMsg
	if err := decode(msg, "cw20::ExecuteMsg", &m); err != nil {
		return nil, err
	}
	return e.Execute(deps, env, info, m)
}

func (e *EntryPoints) QueryRaw(deps vmcontext.Deps, env vmcontext.Env, msg []byte) ([]byte, error) {
	var m cw20.QueryMsg
	if err := decode(msg, "cw20::QueryMsg", &m); err != nil {
		return nil, err
	}
	return e.Query(deps, env, m)
}

func (e *EntryPoints) MigrateRaw(deps vmcontext.DepsMut, env vmcontext.Env, msg []byte) (*vmcontext.Response, error) {
	var m MigrateMsg
	if err := decode(msg, "mide::MigrateMsg", &m); err != nil {
		return nil, err
	}
	return e.Migrate(deps, env, m)
}
