package cw20

import (
	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

// ExecuteHandler has one method per execute variant. A variant cannot exist without its method here.
type ExecuteHandler interface {
	Transfer(msg TransferMsg) (*vmcontext.Response, error)
	Burn(msg BurnMsg) (*vmcontext.Response, error)
	Send(msg SendMsg) (*vmcontext.Response, error)
	Mint(msg MintMsg) (*vmcontext.Response, error)
	IncreaseAllowance(msg IncreaseAllowanceMsg) (*vmcontext.Response, error)
	DecreaseAllowance(msg DecreaseAllowanceMsg) (*vmcontext.Response, error)
	TransferFrom(msg TransferFromMsg) (*vmcontext.Response, error)
	BurnFrom(msg BurnFromMsg) (*vmcontext.Response, error)
	SendFrom(msg SendFromMsg) (*vmcontext.Response, error)
	UpdateMarketing(msg UpdateMarketingMsg) (*vmcontext.Response, error)
	UploadLogo(msg UploadLogoMsg) (*vmcontext.Response, error)
}

// ExecuteVariant is one case of ExecuteMsg.
type ExecuteVariant interface {
	Tag() string
	Accept(h ExecuteHandler) (*vmcontext.Response, error)
}

type TransferMsg struct {
	Recipient string            `json:"recipient"`
	Amount    prototype.Uint128 `json:"amount"`
}

type BurnMsg struct {
	Amount prototype.Uint128 `json:"amount"`
}

type SendMsg struct {
	Contract string            `json:"contract"`
	Amount   prototype.Uint128 `json:"amount"`
	Msg      []byte            `json:"msg"`
}

type MintMsg struct {
	Recipient string            `json:"recipient"`
	Amount    prototype.Uint128 `json:"amount"`
}

type IncreaseAllowanceMsg struct {
	Spender string            `json:"spender"`
	Amount  prototype.Uint128 `json:"amount"`
	Expires *Expiration       `json:"expires"`
}

type DecreaseAllowanceMsg struct {
	Spender string            `json:"spender"`
	Amount  prototype.Uint128 `json:"amount"`
	Expires *Expiration       `json:"expires"`
}

type TransferFromMsg struct {
	Owner     string            `json:"owner"`
	Recipient string            `json:"recipient"`
	Amount    prototype.Uint128 `json:"amount"`
}

type BurnFromMsg struct {
	Owner  string            `json:"owner"`
	Amount prototype.Uint128 `json:"amount"`
}

type SendFromMsg struct {
	Owner    string            `json:"owner"`
	Contract string            `json:"contract"`
	Amount   prototype.Uint128 `json:"amount"`
	Msg      []byte            `json:"msg"`
}

// UpdateMarketingMsg fields left nil are untouched, empty strings clear the field.
type UpdateMarketingMsg struct {
	Project     *string `json:"project"`
	Description *string `json:"description"`
	Marketing   *string `json:"marketing"`
}

type UploadLogoMsg Logo

func (m *UploadLogoMsg) UnmarshalJSON(input []byte) error {
	return (*Logo)(m).UnmarshalJSON(input)
}

func (TransferMsg) Tag() string          { return "transfer" }
func (BurnMsg) Tag() string              { return "burn" }
func (SendMsg) Tag() string              { return "send" }
func (MintMsg) Tag() string              { return "mint" }
func (IncreaseAllowanceMsg) Tag() string { return "increase_allowance" }
func (DecreaseAllowanceMsg) Tag() string { return "decrease_allowance" }
func (TransferFromMsg) Tag() string      { return "transfer_from" }
func (BurnFromMsg) Tag() string          { return "burn_from" }
func (SendFromMsg) Tag() string          { return "send_from" }
func (UpdateMarketingMsg) Tag() string   { return "update_marketing" }
func (UploadLogoMsg) Tag() string        { return "upload_logo" }

func (m TransferMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error) { return h.Transfer(m) }
func (m BurnMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error)     { return h.Burn(m) }
func (m SendMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error)     { return h.Send(m) }
func (m MintMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error)     { return h.Mint(m) }
func (m IncreaseAllowanceMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error) {
	return h.IncreaseAllowance(m)
}
func (m DecreaseAllowanceMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error) {
	return h.DecreaseAllowance(m)
}
func (m TransferFromMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error) {
	return h.TransferFrom(m)
}
func (m BurnFromMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error) { return h.BurnFrom(m) }
func (m SendFromMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error) { return h.SendFrom(m) }
func (m UpdateMarketingMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error) {
	return h.UpdateMarketing(m)
}
func (m UploadLogoMsg) Accept(h ExecuteHandler) (*vmcontext.Response, error) { return h.UploadLogo(m) }

// ExecuteVariants lists a zero value of every execute variant.
func ExecuteVariants() []ExecuteVariant {
	return []ExecuteVariant{
		TransferMsg{},
		BurnMsg{},
		SendMsg{},
		MintMsg{},
		IncreaseAllowanceMsg{},
		DecreaseAllowanceMsg{},
		TransferFromMsg{},
		BurnFromMsg{},
		SendFromMsg{},
		UpdateMarketingMsg{},
		UploadLogoMsg{},
	}
}

// ExecuteMsg is the command enumeration of the token contract.
type ExecuteMsg struct {
	Variant ExecuteVariant
}

func (m ExecuteMsg) MarshalJSON() ([]byte, error) {
	return marshalTagged(m.Variant)
}

func (m *ExecuteMsg) UnmarshalJSON(input []byte) error {
	variants := ExecuteVariants()
	registry := make([]tagged, len(variants))
	for i, v := range variants {
		registry[i] = v
	}
	v, err := unmarshalTagged(input, "ExecuteMsg", registry)
	if err != nil {
		return err
	}
	m.Variant = v.(ExecuteVariant)
	return nil
}
