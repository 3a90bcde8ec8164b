package cw20

// QueryHandler has one method per query variant. Results are serialized by the caller.
type QueryHandler interface {
	Balance(q BalanceQuery) (interface{}, error)
	TokenInfo(q TokenInfoQuery) (interface{}, error)
	Minter(q MinterQuery) (interface{}, error)
	Allowance(q AllowanceQuery) (interface{}, error)
	AllAllowances(q AllAllowancesQuery) (interface{}, error)
	AllAccounts(q AllAccountsQuery) (interface{}, error)
	MarketingInfo(q MarketingInfoQuery) (interface{}, error)
	DownloadLogo(q DownloadLogoQuery) (interface{}, error)
}

type QueryVariant interface {
	Tag() string
	Accept(h QueryHandler) (interface{}, error)
}

type BalanceQuery struct {
	Address string `json:"address"`
}

type TokenInfoQuery struct{}

type MinterQuery struct{}

type AllowanceQuery struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

type AllAllowancesQuery struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

type AllAccountsQuery struct {
	StartAfter *string `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

type MarketingInfoQuery struct{}

type DownloadLogoQuery struct{}

func (BalanceQuery) Tag() string       { return "balance" }
func (TokenInfoQuery) Tag() string     { return "token_info" }
func (MinterQuery) Tag() string        { return "minter" }
func (AllowanceQuery) Tag() string     { return "allowance" }
func (AllAllowancesQuery) Tag() string { return "all_allowances" }
func (AllAccountsQuery) Tag() string   { return "all_accounts" }
func (MarketingInfoQuery) Tag() string { return "marketing_info" }
func (DownloadLogoQuery) Tag() string  { return "download_logo" }

func (q BalanceQuery) Accept(h QueryHandler) (interface{}, error)       { return h.Balance(q) }
func (q TokenInfoQuery) Accept(h QueryHandler) (interface{}, error)     { return h.TokenInfo(q) }
func (q MinterQuery) Accept(h QueryHandler) (interface{}, error)        { return h.Minter(q) }
func (q AllowanceQuery) Accept(h QueryHandler) (interface{}, error)     { return h.Allowance(q) }
func (q AllAllowancesQuery) Accept(h QueryHandler) (interface{}, error) { return h.AllAllowances(q) }
func (q AllAccountsQuery) Accept(h QueryHandler) (interface{}, error)   { return h.AllAccounts(q) }
func (q MarketingInfoQuery) Accept(h QueryHandler) (interface{}, error) { return h.MarketingInfo(q) }
func (q DownloadLogoQuery) Accept(h QueryHandler) (interface{}, error)  { return h.DownloadLogo(q) }

// QueryVariants lists a zero value of every query variant.
func QueryVariants() []QueryVariant {
	return []QueryVariant{
		BalanceQuery{},
		TokenInfoQuery{},
		MinterQuery{},
		AllowanceQuery{},
		AllAllowancesQuery{},
		AllAccountsQuery{},
		MarketingInfoQuery{},
		DownloadLogoQuery{},
	}
}

// QueryMsg is the read-only query enumeration of the token contract.
type QueryMsg struct {
	Variant QueryVariant
}

func (m QueryMsg) MarshalJSON() ([]byte, error) {
	return marshalTagged(m.Variant)
}

func (m *QueryMsg) UnmarshalJSON(input []byte) error {
	variants := QueryVariants()
	registry := make([]tagged, len(variants))
	for i, v := range variants {
		registry[i] = v
	}
	v, err := unmarshalTagged(input, "QueryMsg", registry)
	if err != nil {
		return err
	}
	m.Variant = v.(QueryVariant)
	return nil
}
