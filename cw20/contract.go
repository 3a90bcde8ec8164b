package cw20

import (
	"strings"

	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
	"github.com/deckarep/golang-set"
	"github.com/pkg/errors"
)

func Instantiate(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg InstantiateMsg) (*vmcontext.Response, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	totalSupply, err := createAccounts(deps, msg.InitialBalances)
	if err != nil {
		return nil, err
	}
	if limit := msg.Cap(); limit != nil && totalSupply.Cmp(*limit) > 0 {
		return nil, vmcontext.NewGenericErr("Initial supply greater than cap")
	}

	var mint *MinterData
	if msg.Mint != nil {
		minter, err := deps.Api.AddrValidate(msg.Mint.Minter)
		if err != nil {
			return nil, err
		}
		mint = &MinterData{Minter: minter, Cap: msg.Mint.Cap}
	}
	tokenInfo := &TokenInfo{
		Name:        msg.Name,
		Symbol:      msg.Symbol,
		Decimals:    msg.Decimals,
		TotalSupply: totalSupply,
		Mint:        mint,
	}
	if err = saveTokenInfo(deps.Storage, tokenInfo); err != nil {
		return nil, err
	}

	if m := msg.Marketing; m != nil {
		data := &MarketingInfoResponse{
			Project:     m.Project,
			Description: m.Description,
		}
		if m.Logo != nil {
			if err = verifyLogo(m.Logo); err != nil {
				return nil, err
			}
			if err = saveLogo(deps.Storage, m.Logo); err != nil {
				return nil, err
			}
			data.Logo = logoInfoOf(m.Logo)
		}
		if m.Marketing != nil {
			addr, err := deps.Api.AddrValidate(*m.Marketing)
			if err != nil {
				return nil, err
			}
			data.Marketing = &addr
		}
		if err = saveMarketingInfo(deps.Storage, data); err != nil {
			return nil, err
		}
	}
	return vmcontext.NewResponse(), nil
}

func createAccounts(deps vmcontext.DepsMut, accounts []Cw20Coin) (prototype.Uint128, error) {
	if err := validateAccounts(accounts); err != nil {
		return prototype.ZeroUint128, err
	}
	total := prototype.ZeroUint128
	for _, row := range accounts {
		addr, err := deps.Api.AddrValidate(row.Address)
		if err != nil {
			return prototype.ZeroUint128, err
		}
		if err = saveBalance(deps.Storage, addr, row.Amount); err != nil {
			return prototype.ZeroUint128, err
		}
		if total, err = total.CheckedAdd(row.Amount); err != nil {
			return prototype.ZeroUint128, err
		}
	}
	return total, nil
}

func validateAccounts(accounts []Cw20Coin) error {
	seen := mapset.NewThreadUnsafeSet()
	for _, row := range accounts {
		if !seen.Add(row.Address) {
			return ErrDuplicateInitialBalanceAddresses
		}
	}
	return nil
}

func ExecuteTransfer(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, recipient string, amount prototype.Uint128) (*vmcontext.Response, error) {
	if amount.IsZero() {
		return nil, ErrInvalidZeroAmount
	}
	rcpt, err := deps.Api.AddrValidate(recipient)
	if err != nil {
		return nil, err
	}
	if err = subBalance(deps.Storage, info.Sender, amount); err != nil {
		return nil, err
	}
	if err = addBalance(deps.Storage, rcpt, amount); err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().
		AddAttribute("action", "transfer").
		AddAttribute("from", info.Sender).
		AddAttribute("to", rcpt).
		AddAttribute("amount", amount.String()), nil
}

func ExecuteBurn(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, amount prototype.Uint128) (*vmcontext.Response, error) {
	if amount.IsZero() {
		return nil, ErrInvalidZeroAmount
	}
	if err := subBalance(deps.Storage, info.Sender, amount); err != nil {
		return nil, err
	}
	if err := reduceSupply(deps.Storage, amount); err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().
		AddAttribute("action", "burn").
		AddAttribute("from", info.Sender).
		AddAttribute("amount", amount.String()), nil
}

func reduceSupply(store vmcontext.Storage, amount prototype.Uint128) error {
	tokenInfo, err := loadTokenInfo(store)
	if err != nil {
		return err
	}
	if tokenInfo.TotalSupply, err = tokenInfo.TotalSupply.CheckedSub(amount); err != nil {
		return err
	}
	return saveTokenInfo(store, tokenInfo)
}

func ExecuteMint(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, recipient string, amount prototype.Uint128) (*vmcontext.Response, error) {
	if amount.IsZero() {
		return nil, ErrInvalidZeroAmount
	}
	tokenInfo, err := loadTokenInfo(deps.Storage)
	if err != nil {
		return nil, err
	}
	if tokenInfo.Mint == nil || tokenInfo.Mint.Minter != info.Sender {
		return nil, ErrUnauthorized
	}
	if tokenInfo.TotalSupply, err = tokenInfo.TotalSupply.CheckedAdd(amount); err != nil {
		return nil, err
	}
	if limit := tokenInfo.Cap(); limit != nil && tokenInfo.TotalSupply.Cmp(*limit) > 0 {
		return nil, ErrCannotExceedCap
	}
	if err = saveTokenInfo(deps.Storage, tokenInfo); err != nil {
		return nil, err
	}

	rcpt, err := deps.Api.AddrValidate(recipient)
	if err != nil {
		return nil, err
	}
	if err = addBalance(deps.Storage, rcpt, amount); err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().
		AddAttribute("action", "mint").
		AddAttribute("to", rcpt).
		AddAttribute("amount", amount.String()), nil
}

func ExecuteSend(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, contract string, amount prototype.Uint128, msg []byte) (*vmcontext.Response, error) {
	if amount.IsZero() {
		return nil, ErrInvalidZeroAmount
	}
	rcpt, err := deps.Api.AddrValidate(contract)
	if err != nil {
		return nil, err
	}
	if err = subBalance(deps.Storage, info.Sender, amount); err != nil {
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
		AddAttribute("action", "send").
		AddAttribute("from", info.Sender).
		AddAttribute("to", rcpt).
		AddAttribute("amount", amount.String()).
		AddMessage(hook), nil
}

// optionalField maps an update to its stored value: empty or blank clears the field.
func optionalField(update *string) *string {
	if strings.TrimSpace(*update) == "" {
		return nil
	}
	return update
}

func ExecuteUpdateMarketing(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, project, description, marketing *string) (*vmcontext.Response, error) {
	marketingInfo, found, err := loadMarketingInfo(deps.Storage)
	if err != nil {
		return nil, err
	}
	if !found || marketingInfo.Marketing == nil || *marketingInfo.Marketing != info.Sender {
		return nil, ErrUnauthorized
	}

	if project != nil {
		marketingInfo.Project = optionalField(project)
	}
	if description != nil {
		marketingInfo.Description = optionalField(description)
	}
	if marketing != nil {
		if addr := optionalField(marketing); addr == nil {
			marketingInfo.Marketing = nil
		} else {
			validated, err := deps.Api.AddrValidate(*addr)
			if err != nil {
				return nil, err
			}
			marketingInfo.Marketing = &validated
		}
	}

	if marketingInfo.Project == nil && marketingInfo.Description == nil &&
		marketingInfo.Marketing == nil && marketingInfo.Logo == nil {
		err = removeMarketingInfo(deps.Storage)
	} else {
		err = saveMarketingInfo(deps.Storage, marketingInfo)
	}
	if err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().AddAttribute("action", "update_marketing"), nil
}

func ExecuteUploadLogo(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, logo Logo) (*vmcontext.Response, error) {
	marketingInfo, found, err := loadMarketingInfo(deps.Storage)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUnauthorized
	}
	if err = verifyLogo(&logo); err != nil {
		return nil, err
	}
	if marketingInfo.Marketing == nil || *marketingInfo.Marketing != info.Sender {
		return nil, ErrUnauthorized
	}
	if err = saveLogo(deps.Storage, &logo); err != nil {
		return nil, err
	}
	marketingInfo.Logo = logoInfoOf(&logo)
	if err = saveMarketingInfo(deps.Storage, marketingInfo); err != nil {
		return nil, err
	}
	return vmcontext.NewResponse().AddAttribute("action", "upload_logo"), nil
}

func QueryBalance(deps vmcontext.Deps, address string) (*BalanceResponse, error) {
	addr, err := deps.Api.AddrValidate(address)
	if err != nil {
		return nil, err
	}
	balance, err := loadBalance(deps.Storage, addr)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{Balance: balance}, nil
}

func QueryTokenInfo(deps vmcontext.Deps) (*TokenInfoResponse, error) {
	tokenInfo, err := loadTokenInfo(deps.Storage)
	if err != nil {
		return nil, err
	}
	return &TokenInfoResponse{
		Name:        tokenInfo.Name,
		Symbol:      tokenInfo.Symbol,
		Decimals:    tokenInfo.Decimals,
		TotalSupply: tokenInfo.TotalSupply,
	}, nil
}

// QueryMinter returns nil when the token has no minter.
func QueryMinter(deps vmcontext.Deps) (*MinterResponse, error) {
	tokenInfo, err := loadTokenInfo(deps.Storage)
	if err != nil {
		return nil, err
	}
	if tokenInfo.Mint == nil {
		return nil, nil
	}
	return &MinterResponse{Minter: tokenInfo.Mint.Minter, Cap: tokenInfo.Mint.Cap}, nil
}

func QueryMarketingInfo(deps vmcontext.Deps) (*MarketingInfoResponse, error) {
	info, found, err := loadMarketingInfo(deps.Storage)
	if err != nil {
		return nil, err
	}
	if !found {
		return &MarketingInfoResponse{}, nil
	}
	return info, nil
}

func QueryDownloadLogo(deps vmcontext.Deps) (*DownloadLogoResponse, error) {
	logo, err := loadLogo(deps.Storage)
	if err != nil {
		return nil, err
	}
	switch {
	case logo.Embedded != nil && logo.Embedded.Svg != nil:
		return &DownloadLogoResponse{MimeType: "image/svg+xml", Data: logo.Embedded.Svg}, nil
	case logo.Embedded != nil:
		return &DownloadLogoResponse{MimeType: "image/png", Data: logo.Embedded.Png}, nil
	}
	return nil, errors.WithStack(vmcontext.NewNotFound("logo"))
}
