package cw20

import (
	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

func ExecuteIncreaseAllowance(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, spender string, amount prototype.Uint128, expires *Expiration) (*vmcontext.Response, error) {
	spenderAddr, err := deps.Api.AddrValidate(spender)
	if err != nil {
		return nil, err
	}
	if spenderAddr == info.Sender {
		return nil, ErrCannotSetOwnAccount
	}

	allowance, found, err := loadAllowance(deps.Storage, info.Sender, spenderAddr)
	if err != nil {
		return nil, err
	}
	if !found {
		allowance = &AllowanceResponse{}
	}
	if expires != nil {
		if expires.IsExpired(env.Block) {
			return nil, ErrInvalidExpiration
		}
		allowance.Expires = *expires
	}
	if allowance.Allowance, err = allowance.Allowance.CheckedAdd(amount); err != nil {
		return nil, err
	}
	if err = saveAllowance(deps.Storage, info.Sender, spenderAddr, allowance); err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().
		AddAttribute("action", "increase_allowance").
		AddAttribute("owner", info.Sender).
		AddAttribute("spender", spender).
		AddAttribute("amount", amount.String()), nil
}

func ExecuteDecreaseAllowance(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, spender string, amount prototype.Uint128, expires *Expiration) (*vmcontext.Response, error) {
	spenderAddr, err := deps.Api.AddrValidate(spender)
	if err != nil {
		return nil, err
	}
	if spenderAddr == info.Sender {
		return nil, ErrCannotSetOwnAccount
	}

	allowance, found, err := loadAllowance(deps.Storage, info.Sender, spenderAddr)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, vmcontext.NewNotFound("cw20::AllowanceResponse")
	}
	if amount.Cmp(allowance.Allowance) < 0 {
		if allowance.Allowance, err = allowance.Allowance.CheckedSub(amount); err != nil {
			return nil, err
		}
		if expires != nil {
			if expires.IsExpired(env.Block) {
				return nil, ErrInvalidExpiration
			}
			allowance.Expires = *expires
		}
		err = saveAllowance(deps.Storage, info.Sender, spenderAddr, allowance)
	} else {
		err = removeAllowance(deps.Storage, info.Sender, spenderAddr)
	}
	if err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().
		AddAttribute("action", "decrease_allowance").
		AddAttribute("owner", info.Sender).
		AddAttribute("spender", spender).
		AddAttribute("amount", amount.String()), nil
}

// deductAllowance spends amount of the allowance owner granted spender.
func deductAllowance(store vmcontext.Storage, owner, spender string, block vmcontext.BlockInfo, amount prototype.Uint128) error {
	allowance, found, err := loadAllowance(store, owner, spender)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoAllowance
	}
	if allowance.Expires.IsExpired(block) {
		return ErrExpired
	}
	if allowance.Allowance, err = allowance.Allowance.CheckedSub(amount); err != nil {
		return err
	}
	return saveAllowance(store, owner, spender, allowance)
}

func ExecuteTransferFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner, recipient string, amount prototype.Uint128) (*vmcontext.Response, error) {
	rcpt, err := deps.Api.AddrValidate(recipient)
	if err != nil {
		return nil, err
	}
	ownerAddr, err := deps.Api.AddrValidate(owner)
	if err != nil {
		return nil, err
	}
	if err = deductAllowance(deps.Storage, ownerAddr, info.Sender, env.Block, amount); err != nil {
		return nil, err
	}
	if err = subBalance(deps.Storage, ownerAddr, amount); err != nil {
		return nil, err
	}
	if err = addBalance(deps.Storage, rcpt, amount); err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().
		AddAttribute("action", "transfer_from").
		AddAttribute("from", owner).
		AddAttribute("to", recipient).
		AddAttribute("by", info.Sender).
		AddAttribute("amount", amount.String()), nil
}

func ExecuteBurnFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner string, amount prototype.Uint128) (*vmcontext.Response, error) {
	ownerAddr, err := deps.Api.AddrValidate(owner)
	if err != nil {
		return nil, err
	}
	if err = deductAllowance(deps.Storage, ownerAddr, info.Sender, env.Block, amount); err != nil {
		return nil, err
	}
	if err = subBalance(deps.Storage, ownerAddr, amount); err != nil {
		return nil, err
	}
	if err = reduceSupply(deps.Storage, amount); err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().
		AddAttribute("action", "burn_from").
		AddAttribute("from", owner).
		AddAttribute("by", info.Sender).
		AddAttribute("amount", amount.String()), nil
}

func ExecuteSendFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner, contract string, amount prototype.Uint128, msg []byte) (*vmcontext.Response, error) {
	rcpt, err := deps.Api.AddrValidate(contract)
	if err != nil {
		return nil, err
	}
	ownerAddr, err := deps.Api.AddrValidate(owner)
	if err != nil {
		return nil, err
	}
	if err = deductAllowance(deps.Storage, ownerAddr, info.Sender, env.Block, amount); err != nil {
		return nil, err
	}
	if err = subBalance(deps.Storage, ownerAddr, amount); err != nil {
		return nil, err
	}
	if err = addBalance(deps.Storage, rcpt, amount); err != nil {
		return nil, err
	}
	hook, err := Cw20ReceiveMsg{Sender: info.Sender, Amount: amount, Msg: msg}.IntoCosmosMsg(contract)
	if err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().
		AddAttribute("action", "send_from").
		AddAttribute("from", owner).
		AddAttribute("to", contract).
		AddAttribute("by", info.Sender).
		AddAttribute("amount", amount.String()).
		AddMessage(hook), nil
}

// QueryAllowance returns a zero allowance that never expires when none was granted.
func QueryAllowance(deps vmcontext.Deps, owner, spender string) (*AllowanceResponse, error) {
	ownerAddr, err := deps.Api.AddrValidate(owner)
	if err != nil {
		return nil, err
	}
	spenderAddr, err := deps.Api.AddrValidate(spender)
	if err != nil {
		return nil, err
	}
	allowance, found, err := loadAllowance(deps.Storage, ownerAddr, spenderAddr)
	if err != nil {
		return nil, err
	}
	if !found {
		return &AllowanceResponse{Expires: ExpiresNever()}, nil
	}
	return allowance, nil
}
