package cw20

import (
	"encoding/binary"

	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

var (
	tokenInfoKey     = []byte("token_info")
	marketingInfoKey = []byte("marketing_info")
	logoKey          = []byte("logo")
)

const (
	balancesNamespace   = "balance"
	allowancesNamespace = "allowance"
)

type MinterData struct {
	Minter string             `json:"minter"`
	Cap    *prototype.Uint128 `json:"cap"`
}

type TokenInfo struct {
	Name        string            `json:"name"`
	Symbol      string            `json:"symbol"`
	Decimals    uint8             `json:"decimals"`
	TotalSupply prototype.Uint128 `json:"total_supply"`
	Mint        *MinterData       `json:"mint"`
}

func (t *TokenInfo) Cap() *prototype.Uint128 {
	if t.Mint == nil {
		return nil
	}
	return t.Mint.Cap
}

//
// keys: a map entry is stored under len(namespace) | namespace | key,
// composite keys length-prefix every part but the last.
//

func lengthPrefixed(b []byte) []byte {
	out := make([]byte, 2, 2+len(b))
	binary.BigEndian.PutUint16(out, uint16(len(b)))
	return append(out, b...)
}

func mapPrefix(namespace string, parents ...string) []byte {
	prefix := lengthPrefixed([]byte(namespace))
	for _, p := range parents {
		prefix = append(prefix, lengthPrefixed([]byte(p))...)
	}
	return prefix
}

func balanceKey(addr string) []byte {
	return append(mapPrefix(balancesNamespace), addr...)
}

func allowanceKey(owner, spender string) []byte {
	return append(mapPrefix(allowancesNamespace, owner), spender...)
}

// prefixEnd returns the smallest key greater than every key starting with prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// exclusiveStart returns the first key after prefix|after, or prefix itself when after is nil.
func exclusiveStart(prefix []byte, after *string) []byte {
	start := append([]byte(nil), prefix...)
	if after != nil {
		start = append(start, *after...)
		start = append(start, 0)
	}
	return start
}

//
// accessors
//

func loadTokenInfo(store vmcontext.ReadonlyStorage) (*TokenInfo, error) {
	info := new(TokenInfo)
	found, err := vmcontext.LoadJSON(store, tokenInfoKey, "cw20::TokenInfo", info)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, vmcontext.NewNotFound("cw20::TokenInfo")
	}
	return info, nil
}

func saveTokenInfo(store vmcontext.Storage, info *TokenInfo) error {
	return vmcontext.SaveJSON(store, tokenInfoKey, "cw20::TokenInfo", info)
}

func loadBalance(store vmcontext.ReadonlyStorage, addr string) (prototype.Uint128, error) {
	var balance prototype.Uint128
	if _, err := vmcontext.LoadJSON(store, balanceKey(addr), "Uint128", &balance); err != nil {
		return prototype.ZeroUint128, err
	}
	return balance, nil
}

func saveBalance(store vmcontext.Storage, addr string, balance prototype.Uint128) error {
	return vmcontext.SaveJSON(store, balanceKey(addr), "Uint128", balance)
}

func addBalance(store vmcontext.Storage, addr string, amount prototype.Uint128) error {
	balance, err := loadBalance(store, addr)
	if err != nil {
		return err
	}
	if balance, err = balance.CheckedAdd(amount); err != nil {
		return err
	}
	return saveBalance(store, addr, balance)
}

func subBalance(store vmcontext.Storage, addr string, amount prototype.Uint128) error {
	balance, err := loadBalance(store, addr)
	if err != nil {
		return err
	}
	if balance, err = balance.CheckedSub(amount); err != nil {
		return err
	}
	return saveBalance(store, addr, balance)
}

func loadAllowance(store vmcontext.ReadonlyStorage, owner, spender string) (*AllowanceResponse, bool, error) {
	allowance := new(AllowanceResponse)
	found, err := vmcontext.LoadJSON(store, allowanceKey(owner, spender), "cw20::AllowanceResponse", allowance)
	if err != nil || !found {
		return nil, false, err
	}
	return allowance, true, nil
}

func saveAllowance(store vmcontext.Storage, owner, spender string, allowance *AllowanceResponse) error {
	return vmcontext.SaveJSON(store, allowanceKey(owner, spender), "cw20::AllowanceResponse", allowance)
}

func removeAllowance(store vmcontext.Storage, owner, spender string) error {
	return store.Remove(allowanceKey(owner, spender))
}

func loadMarketingInfo(store vmcontext.ReadonlyStorage) (*MarketingInfoResponse, bool, error) {
	info := new(MarketingInfoResponse)
	found, err := vmcontext.LoadJSON(store, marketingInfoKey, "cw20::MarketingInfoResponse", info)
	if err != nil || !found {
		return nil, false, err
	}
	return info, true, nil
}

func saveMarketingInfo(store vmcontext.Storage, info *MarketingInfoResponse) error {
	return vmcontext.SaveJSON(store, marketingInfoKey, "cw20::MarketingInfoResponse", info)
}

func removeMarketingInfo(store vmcontext.Storage) error {
	return store.Remove(marketingInfoKey)
}

func loadLogo(store vmcontext.ReadonlyStorage) (*Logo, error) {
	logo := new(Logo)
	found, err := vmcontext.LoadJSON(store, logoKey, "cw20::Logo", logo)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, vmcontext.NewNotFound("cw20::Logo")
	}
	return logo, nil
}

func saveLogo(store vmcontext.Storage, logo *Logo) error {
	return vmcontext.SaveJSON(store, logoKey, "cw20::Logo", logo)
}
