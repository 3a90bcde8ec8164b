package cw20

import (
	"testing"

	"github.com/coschain/mide-token/db/storage"
	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
	"github.com/stretchr/testify/require"
)

const (
	genesis = "addr0000"
	alice   = "addr0001"
	bob     = "addr0002"
	minter  = "minter0000"
)

func mockDeps() vmcontext.DepsMut {
	return vmcontext.DepsMut{
		Storage: vmcontext.NewStorage(storage.NewMemoryDatabase()),
		Api:     vmcontext.NewApi(),
	}
}

func mockEnv() vmcontext.Env {
	return vmcontext.Env{
		Block: vmcontext.BlockInfo{
			Height:  12345,
			Time:    prototype.TimestampFromSeconds(1571797419),
			ChainID: "cos-testnet-14002",
		},
		Contract: vmcontext.ContractInfo{Address: "contract0"},
	}
}

func mockInfo(sender string) vmcontext.MessageInfo {
	return vmcontext.MessageInfo{Sender: sender, Funds: []prototype.Coin{}}
}

func u128(v uint64) prototype.Uint128 {
	return prototype.NewUint128(v)
}

func strPtr(s string) *string {
	return &s
}

// doInstantiate sets up a token with a single initial holder and an optional minter.
func doInstantiate(t *testing.T, deps vmcontext.DepsMut, addr string, amount prototype.Uint128, mint *MinterResponse) {
	msg := InstantiateMsg{
		Name:            "Auto Gen",
		Symbol:          "AUTO",
		Decimals:        3,
		InitialBalances: []Cw20Coin{{Address: addr, Amount: amount}},
		Mint:            mint,
	}
	res, err := Instantiate(deps, mockEnv(), mockInfo("creator"), msg)
	require.NoError(t, err)
	require.Empty(t, res.Messages)
}

func balanceOf(t *testing.T, deps vmcontext.DepsMut, addr string) prototype.Uint128 {
	res, err := QueryBalance(deps.AsRef(), addr)
	require.NoError(t, err)
	return res.Balance
}

func totalSupply(t *testing.T, deps vmcontext.DepsMut) prototype.Uint128 {
	res, err := QueryTokenInfo(deps.AsRef())
	require.NoError(t, err)
	return res.TotalSupply
}
