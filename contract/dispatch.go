package contract

import (
	"github.com/coschain/mide-token/cw20"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

// executeDispatcher binds one execute call to the library.
type executeDispatcher struct {
	lib  Library
	deps vmcontext.DepsMut
	env  vmcontext.Env
	info vmcontext.MessageInfo
}

func (d *executeDispatcher) Transfer(msg cw20.TransferMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteTransfer(d.deps, d.env, d.info, msg.Recipient, msg.Amount)
}

func (d *executeDispatcher) Burn(msg cw20.BurnMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteBurn(d.deps, d.env, d.info, msg.Amount)
}

func (d *executeDispatcher) Send(msg cw20.SendMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteSend(d.deps, d.env, d.info, msg.Contract, msg.Amount, msg.Msg)
}

func (d *executeDispatcher) Mint(msg cw20.MintMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteMint(d.deps, d.env, d.info, msg.Recipient, msg.Amount)
}

func (d *executeDispatcher) IncreaseAllowance(msg cw20.IncreaseAllowanceMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteIncreaseAllowance(d.deps, d.env, d.info, msg.Spender, msg.Amount, msg.Expires)
}

func (d *executeDispatcher) DecreaseAllowance(msg cw20.DecreaseAllowanceMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteDecreaseAllowance(d.deps, d.env, d.info, msg.Spender, msg.Amount, msg.Expires)
}

func (d *executeDispatcher) TransferFrom(msg cw20.TransferFromMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteTransferFrom(d.deps, d.env, d.info, msg.Owner, msg.Recipient, msg.Amount)
}

func (d *executeDispatcher) BurnFrom(msg cw20.BurnFromMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteBurnFrom(d.deps, d.env, d.info, msg.Owner, msg.Amount)
}

func (d *executeDispatcher) SendFrom(msg cw20.SendFromMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteSendFrom(d.deps, d.env, d.info, msg.Owner, msg.Contract, msg.Amount, msg.Msg)
}

func (d *executeDispatcher) UpdateMarketing(msg cw20.UpdateMarketingMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteUpdateMarketing(d.deps, d.env, d.info, msg.Project, msg.Description, msg.Marketing)
}

func (d *executeDispatcher) UploadLogo(msg cw20.UploadLogoMsg) (*vmcontext.Response, error) {
	return d.lib.ExecuteUploadLogo(d.deps, d.env, d.info, cw20.Logo(msg))
}

// queryDispatcher binds one query call to the library.
type queryDispatcher struct {
	lib  Library
	deps vmcontext.Deps
}

func (d *queryDispatcher) Balance(q cw20.BalanceQuery) (interface{}, error) {
	return d.lib.QueryBalance(d.deps, q.Address)
}

func (d *queryDispatcher) TokenInfo(cw20.TokenInfoQuery) (interface{}, error) {
	return d.lib.QueryTokenInfo(d.deps)
}

func (d *queryDispatcher) Minter(cw20.MinterQuery) (interface{}, error) {
	return d.lib.QueryMinter(d.deps)
}

func (d *queryDispatcher) Allowance(q cw20.AllowanceQuery) (interface{}, error) {
	return d.lib.QueryAllowance(d.deps, q.Owner, q.Spender)
}

func (d *queryDispatcher) AllAllowances(q cw20.AllAllowancesQuery) (interface{}, error) {
	return d.lib.QueryAllAllowances(d.deps, q.Owner, q.StartAfter, q.Limit)
}

func (d *queryDispatcher) AllAccounts(q cw20.AllAccountsQuery) (interface{}, error) {
	return d.lib.QueryAllAccounts(d.deps, q.StartAfter, q.Limit)
}

func (d *queryDispatcher) MarketingInfo(cw20.MarketingInfoQuery) (interface{}, error) {
	return d.lib.QueryMarketingInfo(d.deps)
}

func (d *queryDispatcher) DownloadLogo(cw20.DownloadLogoQuery) (interface{}, error) {
	return d.lib.QueryDownloadLogo(d.deps)
}
