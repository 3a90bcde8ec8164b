package config

import (
	"io/ioutil"

	"github.com/coschain/mide-token/cw20"
	"github.com/coschain/mide-token/prototype"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Genesis lists the token contracts created when a node starts on an empty database.
type Genesis struct {
	Contracts []GenesisContract `toml:"contract"`
}

type GenesisBalance struct {
	Address string `toml:"address"`
	Amount  string `toml:"amount"`
}

type GenesisContract struct {
	Sender      string           `toml:"sender"`
	Name        string           `toml:"name"`
	Symbol      string           `toml:"symbol"`
	Decimals    int64            `toml:"decimals"`
	Minter      string           `toml:"minter"`
	Cap         string           `toml:"cap"`
	Project     string           `toml:"project"`
	Description string           `toml:"description"`
	Marketing   string           `toml:"marketing"`
	LogoUrl     string           `toml:"logo_url"`
	Balances    []GenesisBalance `toml:"balance"`
}

func LoadGenesisFile(path string) (*Genesis, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load genesis %s", path)
	}
	return ParseGenesis(data)
}

func ParseGenesis(data []byte) (*Genesis, error) {
	g := new(Genesis)
	if err := toml.Unmarshal(data, g); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	for i, c := range g.Contracts {
		if c.Sender == "" {
			return nil, errors.Errorf("genesis contract %d has no sender", i)
		}
	}
	return g, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// InstantiateMsg converts the entry into the message its contract is instantiated with.
func (c *GenesisContract) InstantiateMsg() (*cw20.InstantiateMsg, error) {
	if c.Decimals < 0 || c.Decimals > 255 {
		return nil, errors.Errorf("decimals %d out of range", c.Decimals)
	}
	msg := &cw20.InstantiateMsg{
		Name:            c.Name,
		Symbol:          c.Symbol,
		Decimals:        uint8(c.Decimals),
		InitialBalances: make([]cw20.Cw20Coin, 0, len(c.Balances)),
	}
	for _, b := range c.Balances {
		amount, err := prototype.ParseUint128(b.Amount)
		if err != nil {
			return nil, errors.Wrapf(err, "balance of %s", b.Address)
		}
		msg.InitialBalances = append(msg.InitialBalances, cw20.Cw20Coin{Address: b.Address, Amount: amount})
	}
	if c.Minter != "" {
		msg.Mint = &cw20.MinterResponse{Minter: c.Minter}
		if c.Cap != "" {
			limit, err := prototype.ParseUint128(c.Cap)
			if err != nil {
				return nil, errors.Wrap(err, "cap")
			}
			msg.Mint.Cap = &limit
		}
	}
	if c.Project != "" || c.Description != "" || c.Marketing != "" || c.LogoUrl != "" {
		msg.Marketing = &cw20.InstantiateMarketingInfo{
			Project:     optional(c.Project),
			Description: optional(c.Description),
			Marketing:   optional(c.Marketing),
		}
		if c.LogoUrl != "" {
			logo := cw20.UrlLogo(c.LogoUrl)
			msg.Marketing.Logo = &logo
		}
	}
	return msg, nil
}
