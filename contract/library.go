package contract

import (
	"github.com/coschain/mide-token/cw20"
	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

//go:generate mockgen -destination=mock/library.go -package=mock_contract github.com/coschain/mide-token/contract Library

// Library is the token standard the contract delegates to, one method per message variant.
type Library interface {
	Instantiate(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg cw20.InstantiateMsg) (*vmcontext.Response, error)

	ExecuteTransfer(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, recipient string, amount prototype.Uint128) (*vmcontext.Response, error)
	ExecuteBurn(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, amount prototype.Uint128) (*vmcontext.Response, error)
	ExecuteSend(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, contract string, amount prototype.Uint128, msg []byte) (*vmcontext.Response, error)
	ExecuteMint(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, recipient string, amount prototype.Uint128) (*vmcontext.Response, error)
	ExecuteIncreaseAllowance(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, spender string, amount prototype.Uint128, expires *cw20.Expiration) (*vmcontext.Response, error)
	ExecuteDecreaseAllowance(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, spender string, amount prototype.Uint128, expires *cw20.Expiration) (*vmcontext.Response, error)
	ExecuteTransferFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner, recipient string, amount prototype.Uint128) (*vmcontext.Response, error)
	ExecuteBurnFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner string, amount prototype.Uint128) (*vmcontext.Response, error)
	ExecuteSendFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner, contract string, amount prototype.Uint128, msg []byte) (*vmcontext.Response, error)
	ExecuteUpdateMarketing(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, project, description, marketing *string) (*vmcontext.Response, error)
	ExecuteUploadLogo(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, logo cw20.Logo) (*vmcontext.Response, error)

	QueryBalance(deps vmcontext.Deps, address string) (*cw20.BalanceResponse, error)
	QueryTokenInfo(deps vmcontext.Deps) (*cw20.TokenInfoResponse, error)
	QueryMinter(deps vmcontext.Deps) (*cw20.MinterResponse, error)
	QueryAllowance(deps vmcontext.Deps, owner, spender string) (*cw20.AllowanceResponse, error)
	QueryAllAllowances(deps vmcontext.Deps, owner string, startAfter *string, limit *uint32) (*cw20.AllAllowancesResponse, error)
	QueryAllAccounts(deps vmcontext.Deps, startAfter *string, limit *uint32) (*cw20.AllAccountsResponse, error)
	QueryMarketingInfo(deps vmcontext.Deps) (*cw20.MarketingInfoResponse, error)
	QueryDownloadLogo(deps vmcontext.Deps) (*cw20.DownloadLogoResponse, error)
}

// StandardLibrary is the cw20 package seen as a Library.
type StandardLibrary struct{}

func (StandardLibrary) Instantiate(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg cw20.InstantiateMsg) (*vmcontext.Response, error) {
	return cw20.Instantiate(deps, env, info, msg)
}

func (StandardLibrary) ExecuteTransfer(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, recipient string, amount prototype.Uint128) (*vmcontext.Response, error) {
	return cw20.ExecuteTransfer(deps, env, info, recipient, amount)
}

func (StandardLibrary) ExecuteBurn(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, amount prototype.Uint128) (*vmcontext.Response, error) {
	return cw20.ExecuteBurn(deps, env, info, amount)
}

func (StandardLibrary) ExecuteSend(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, contract string, amount prototype.Uint128, msg []byte) (*vmcontext.Response, error) {
	return cw20.ExecuteSend(deps, env, info, contract, amount, msg)
}

func (StandardLibrary) ExecuteMint(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, recipient string, amount prototype.Uint128) (*vmcontext.Response, error) {
	return cw20.ExecuteMint(deps, env, info, recipient, amount)
}

func (StandardLibrary) ExecuteIncreaseAllowance(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, spender string, amount prototype.Uint128, expires *cw20.Expiration) (*vmcontext.Response, error) {
	return cw20.ExecuteIncreaseAllowance(deps, env, info, spender, amount, expires)
}

func (StandardLibrary) ExecuteDecreaseAllowance(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, spender string, amount prototype.Uint128, expires *cw20.Expiration) (*vmcontext.Response, error) {
	return cw20.ExecuteDecreaseAllowance(deps, env, info, spender, amount, expires)
}

func (StandardLibrary) ExecuteTransferFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner, recipient string, amount prototype.Uint128) (*vmcontext.Response, error) {
	return cw20.ExecuteTransferFrom(deps, env, info, owner, recipient, amount)
}

func (StandardLibrary) ExecuteBurnFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner string, amount prototype.Uint128) (*vmcontext.Response, error) {
	return cw20.ExecuteBurnFrom(deps, env, info, owner, amount)
}

func (StandardLibrary) ExecuteSendFrom(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, owner, contract string, amount prototype.Uint128, msg []byte) (*vmcontext.Response, error) {
	return cw20.ExecuteSendFrom(deps, env, info, owner, contract, amount, msg)
}

func (StandardLibrary) ExecuteUpdateMarketing(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, project, description, marketing *string) (*vmcontext.Response, error) {
	return cw20.ExecuteUpdateMarketing(deps, env, info, project, description, marketing)
}

func (StandardLibrary) ExecuteUploadLogo(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, logo cw20.Logo) (*vmcontext.Response, error) {
	return cw20.ExecuteUploadLogo(deps, env, info, logo)
}

func (StandardLibrary) QueryBalance(deps vmcontext.Deps, address string) (*cw20.BalanceResponse, error) {
	return cw20.QueryBalance(deps, address)
}

func (StandardLibrary) QueryTokenInfo(deps vmcontext.Deps) (*cw20.TokenInfoResponse, error) {
	return cw20.QueryTokenInfo(deps)
}

func (StandardLibrary) QueryMinter(deps vmcontext.Deps) (*cw20.MinterResponse, error) {
	return cw20.QueryMinter(deps)
}

func (StandardLibrary) QueryAllowance(deps vmcontext.Deps, owner, spender string) (*cw20.AllowanceResponse, error) {
	return cw20.QueryAllowance(deps, owner, spender)
}

func (StandardLibrary) QueryAllAllowances(deps vmcontext.Deps, owner string, startAfter *string, limit *uint32) (*cw20.AllAllowancesResponse, error) {
	return cw20.QueryAllAllowances(deps, owner, startAfter, limit)
}

func (StandardLibrary) QueryAllAccounts(deps vmcontext.Deps, startAfter *string, limit *uint32) (*cw20.AllAccountsResponse, error) {
	return cw20.QueryAllAccounts(deps, startAfter, limit)
}

func (StandardLibrary) QueryMarketingInfo(deps vmcontext.Deps) (*cw20.MarketingInfoResponse, error) {
	return cw20.QueryMarketingInfo(deps)
}

func (StandardLibrary) QueryDownloadLogo(deps vmcontext.Deps) (*cw20.DownloadLogoResponse, error) {
	return cw20.QueryDownloadLogo(deps)
}
