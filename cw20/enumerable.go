package cw20

import (
	"encoding/json"

	vmcontext "github.com/coschain/mide-token/vm/context"
)

const (
	DefaultLimit = 10
	MaxLimit     = 30
)

func pageLimit(limit *uint32) int {
	if limit == nil {
		return DefaultLimit
	}
	if *limit > MaxLimit {
		return MaxLimit
	}
	return int(*limit)
}

// QueryAllAllowances lists the allowances granted by owner in ascending spender order.
func QueryAllAllowances(deps vmcontext.Deps, owner string, startAfter *string, limit *uint32) (*AllAllowancesResponse, error) {
	ownerAddr, err := deps.Api.AddrValidate(owner)
	if err != nil {
		return nil, err
	}
	prefix := mapPrefix(allowancesNamespace, ownerAddr)
	res := &AllAllowancesResponse{Allowances: []AllowanceInfo{}}
	max := pageLimit(limit)
	if max == 0 {
		return res, nil
	}

	var rangeErr error
	deps.Storage.Range(exclusiveStart(prefix, startAfter), prefixEnd(prefix), false, func(key, value []byte) bool {
		var allowance AllowanceResponse
		if err := json.Unmarshal(value, &allowance); err != nil {
			rangeErr = vmcontext.NewParseErr("cw20::AllowanceResponse", err)
			return false
		}
		res.Allowances = append(res.Allowances, AllowanceInfo{
			Spender:   string(key[len(prefix):]),
			Allowance: allowance.Allowance,
			Expires:   allowance.Expires,
		})
		return len(res.Allowances) < max
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return res, nil
}

// QueryAllAccounts lists every account holding a balance record in ascending order.
func QueryAllAccounts(deps vmcontext.Deps, startAfter *string, limit *uint32) (*AllAccountsResponse, error) {
	prefix := mapPrefix(balancesNamespace)
	res := &AllAccountsResponse{Accounts: []string{}}
	max := pageLimit(limit)
	if max == 0 {
		return res, nil
	}
	deps.Storage.Range(exclusiveStart(prefix, startAfter), prefixEnd(prefix), false, func(key, value []byte) bool {
		res.Accounts = append(res.Accounts, string(key[len(prefix):]))
		return len(res.Accounts) < max
	})
	return res, nil
}
