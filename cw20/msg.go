package cw20

import (
	"encoding/json"

	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

type Cw20Coin struct {
	Address string            `json:"address"`
	Amount  prototype.Uint128 `json:"amount"`
}

type MinterResponse struct {
	Minter string `json:"minter"`
	// Cap is a hard cap on total supply that can be achieved by minting.
	Cap *prototype.Uint128 `json:"cap"`
}

type InstantiateMarketingInfo struct {
	Project     *string `json:"project"`
	Description *string `json:"description"`
	Marketing   *string `json:"marketing"`
	Logo        *Logo   `json:"logo"`
}

type InstantiateMsg struct {
	Name            string                    `json:"name"`
	Symbol          string                    `json:"symbol"`
	Decimals        uint8                     `json:"decimals"`
	InitialBalances []Cw20Coin                `json:"initial_balances"`
	Mint            *MinterResponse           `json:"mint"`
	Marketing       *InstantiateMarketingInfo `json:"marketing"`
}

// Cap returns the minting cap, if any.
func (m *InstantiateMsg) Cap() *prototype.Uint128 {
	if m.Mint == nil {
		return nil
	}
	return m.Mint.Cap
}

func (m *InstantiateMsg) Validate() error {
	if len(m.Name) < 3 || len(m.Name) > 50 {
		return vmcontext.NewGenericErr("Name is not in the expected format (3-50 UTF-8 bytes)")
	}
	if !isValidSymbol(m.Symbol) {
		return vmcontext.NewGenericErr("Ticker symbol is not in expected format [a-zA-Z\\-]{3,12}")
	}
	if m.Decimals > 18 {
		return vmcontext.NewGenericErr("Decimals must not exceed 18")
	}
	return nil
}

func isValidSymbol(symbol string) bool {
	if len(symbol) < 3 || len(symbol) > 12 {
		return false
	}
	for i := 0; i < len(symbol); i++ {
		c := symbol[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-') {
			return false
		}
	}
	return true
}

// Cw20ReceiveMsg is delivered to the contract receiving tokens through send or send_from.
type Cw20ReceiveMsg struct {
	Sender string            `json:"sender"`
	Amount prototype.Uint128 `json:"amount"`
	Msg    []byte            `json:"msg"`
}

// IntoCosmosMsg wraps the receive hook into an execute call on contractAddr.
func (m Cw20ReceiveMsg) IntoCosmosMsg(contractAddr string) (vmcontext.CosmosMsg, error) {
	payload, err := json.Marshal(map[string]Cw20ReceiveMsg{"receive": m})
	if err != nil {
		return vmcontext.CosmosMsg{}, vmcontext.NewSerializeErr("cw20::Cw20ReceiveMsg", err)
	}
	return vmcontext.CosmosMsg{
		Wasm: &vmcontext.WasmMsg{
			Execute: &vmcontext.WasmExecuteMsg{
				ContractAddr: contractAddr,
				Msg:          payload,
				Funds:        []prototype.Coin{},
			},
		},
	}, nil
}

//
// responses
//

type BalanceResponse struct {
	Balance prototype.Uint128 `json:"balance"`
}

type TokenInfoResponse struct {
	Name        string            `json:"name"`
	Symbol      string            `json:"symbol"`
	Decimals    uint8             `json:"decimals"`
	TotalSupply prototype.Uint128 `json:"total_supply"`
}

type AllowanceResponse struct {
	Allowance prototype.Uint128 `json:"allowance"`
	Expires   Expiration        `json:"expires"`
}

type AllowanceInfo struct {
	Spender   string            `json:"spender"`
	Allowance prototype.Uint128 `json:"allowance"`
	Expires   Expiration        `json:"expires"`
}

type AllAllowancesResponse struct {
	Allowances []AllowanceInfo `json:"allowances"`
}

type AllAccountsResponse struct {
	Accounts []string `json:"accounts"`
}

type MarketingInfoResponse struct {
	Project     *string   `json:"project"`
	Description *string   `json:"description"`
	Logo        *LogoInfo `json:"logo"`
	Marketing   *string   `json:"marketing"`
}

type DownloadLogoResponse struct {
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"`
}
