package cw20

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantiateBasic(t *testing.T) {
	deps := mockDeps()
	doInstantiate(t, deps, genesis, u128(11223344), nil)

	info, err := QueryTokenInfo(deps.AsRef())
	require.NoError(t, err)
	assert.Equal(t, &TokenInfoResponse{Name: "Auto Gen", Symbol: "AUTO", Decimals: 3, TotalSupply: u128(11223344)}, info)
	assert.Equal(t, u128(11223344), balanceOf(t, deps, genesis))
	assert.Equal(t, prototype.ZeroUint128, balanceOf(t, deps, alice))

	m, err := QueryMinter(deps.AsRef())
	require.NoError(t, err)
	assert.Nil(t, m)

	marketing, err := QueryMarketingInfo(deps.AsRef())
	require.NoError(t, err)
	assert.Equal(t, &MarketingInfoResponse{}, marketing)

	_, err = QueryDownloadLogo(deps.AsRef())
	assert.True(t, vmcontext.IsNotFound(err))
}

func TestInstantiateMintable(t *testing.T) {
	deps := mockDeps()
	limit := u128(511223344)
	doInstantiate(t, deps, genesis, u128(11223344), &MinterResponse{Minter: minter, Cap: &limit})

	m, err := QueryMinter(deps.AsRef())
	require.NoError(t, err)
	assert.Equal(t, &MinterResponse{Minter: minter, Cap: &limit}, m)
}

func TestInstantiateOverCap(t *testing.T) {
	deps := mockDeps()
	limit := u128(10)
	msg := InstantiateMsg{
		Name:            "Cash Token",
		Symbol:          "CASH",
		Decimals:        9,
		InitialBalances: []Cw20Coin{{Address: genesis, Amount: u128(11)}},
		Mint:            &MinterResponse{Minter: minter, Cap: &limit},
	}
	_, err := Instantiate(deps, mockEnv(), mockInfo("creator"), msg)
	require.Error(t, err)
	assert.Equal(t, "Generic error: Initial supply greater than cap", err.Error())
}

func TestInstantiateValidation(t *testing.T) {
	base := func() InstantiateMsg {
		return InstantiateMsg{Name: "Cash Token", Symbol: "CASH", Decimals: 9, InitialBalances: []Cw20Coin{}}
	}
	cases := map[string]func(*InstantiateMsg){
		"short name":     func(m *InstantiateMsg) { m.Name = "ab" },
		"long name":      func(m *InstantiateMsg) { m.Name = string(bytes.Repeat([]byte("n"), 51)) },
		"short symbol":   func(m *InstantiateMsg) { m.Symbol = "CA" },
		"symbol charset": func(m *InstantiateMsg) { m.Symbol = "CASH1" },
		"decimals":       func(m *InstantiateMsg) { m.Decimals = 19 },
		"bad address": func(m *InstantiateMsg) {
			m.InitialBalances = []Cw20Coin{{Address: "Not_Valid", Amount: u128(1)}}
		},
		"bad minter": func(m *InstantiateMsg) { m.Mint = &MinterResponse{Minter: "X"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			msg := base()
			mutate(&msg)
			_, err := Instantiate(mockDeps(), mockEnv(), mockInfo("creator"), msg)
			assert.Error(t, err)
		})
	}

	msg := base()
	msg.Symbol = "C-A-SH"
	_, err := Instantiate(mockDeps(), mockEnv(), mockInfo("creator"), msg)
	assert.NoError(t, err)
}

func TestInstantiateDuplicateBalances(t *testing.T) {
	deps := mockDeps()
	msg := InstantiateMsg{
		Name:     "Bash Shell",
		Symbol:   "BASH",
		Decimals: 6,
		InitialBalances: []Cw20Coin{
			{Address: alice, Amount: u128(10)},
			{Address: bob, Amount: u128(20)},
			{Address: alice, Amount: u128(30)},
		},
	}
	_, err := Instantiate(deps, mockEnv(), mockInfo("creator"), msg)
	assert.Equal(t, ErrDuplicateInitialBalanceAddresses, errors.Cause(err))
}

func TestInstantiateMultipleBalances(t *testing.T) {
	deps := mockDeps()
	msg := InstantiateMsg{
		Name:     "Bash Shell",
		Symbol:   "BASH",
		Decimals: 6,
		InitialBalances: []Cw20Coin{
			{Address: alice, Amount: u128(11)},
			{Address: bob, Amount: u128(22)},
		},
	}
	_, err := Instantiate(deps, mockEnv(), mockInfo("creator"), msg)
	require.NoError(t, err)
	assert.Equal(t, u128(33), totalSupply(t, deps))
	assert.Equal(t, u128(11), balanceOf(t, deps, alice))
	assert.Equal(t, u128(22), balanceOf(t, deps, bob))
}

func TestInstantiateMarketing(t *testing.T) {
	deps := mockDeps()
	msg := InstantiateMsg{
		Name:            "Cash Token",
		Symbol:          "CASH",
		Decimals:        9,
		InitialBalances: []Cw20Coin{},
		Marketing: &InstantiateMarketingInfo{
			Project:     strPtr("Project"),
			Description: strPtr("Description"),
			Marketing:   strPtr(alice),
			Logo:        &Logo{Url: strPtr("url")},
		},
	}
	_, err := Instantiate(deps, mockEnv(), mockInfo("creator"), msg)
	require.NoError(t, err)

	info, err := QueryMarketingInfo(deps.AsRef())
	require.NoError(t, err)
	assert.Equal(t, &MarketingInfoResponse{
		Project:     strPtr("Project"),
		Description: strPtr("Description"),
		Marketing:   strPtr(alice),
		Logo:        &LogoInfo{Url: "url"},
	}, info)

	_, err = QueryDownloadLogo(deps.AsRef())
	assert.True(t, vmcontext.IsNotFound(err))
	assert.Equal(t, "logo not found", errors.Cause(err).Error())

	msg.Marketing.Marketing = strPtr("Some_Marketing")
	_, err = Instantiate(mockDeps(), mockEnv(), mockInfo("creator"), msg)
	assert.Error(t, err)
}

func TestTransfer(t *testing.T) {
	deps := mockDeps()
	doInstantiate(t, deps, alice, u128(12340000), nil)

	_, err := ExecuteTransfer(deps, mockEnv(), mockInfo(alice), bob, prototype.ZeroUint128)
	assert.Equal(t, ErrInvalidZeroAmount, err)

	_, err = ExecuteTransfer(deps, mockEnv(), mockInfo(alice), bob, u128(12340001))
	_, overflow := errors.Cause(err).(*prototype.OverflowError)
	assert.True(t, overflow)

	_, err = ExecuteTransfer(deps, mockEnv(), mockInfo(bob), alice, u128(1))
	_, overflow = errors.Cause(err).(*prototype.OverflowError)
	assert.True(t, overflow)

	res, err := ExecuteTransfer(deps, mockEnv(), mockInfo(alice), bob, u128(76543))
	require.NoError(t, err)
	assert.Equal(t, []vmcontext.Attribute{
		{Key: "action", Value: "transfer"},
		{Key: "from", Value: alice},
		{Key: "to", Value: bob},
		{Key: "amount", Value: "76543"},
	}, res.Attributes)
	assert.Empty(t, res.Messages)

	assert.Equal(t, u128(12340000-76543), balanceOf(t, deps, alice))
	assert.Equal(t, u128(76543), balanceOf(t, deps, bob))
	assert.Equal(t, u128(12340000), totalSupply(t, deps))
}

func TestBurn(t *testing.T) {
	deps := mockDeps()
	doInstantiate(t, deps, alice, u128(12340000), nil)

	_, err := ExecuteBurn(deps, mockEnv(), mockInfo(alice), prototype.ZeroUint128)
	assert.Equal(t, ErrInvalidZeroAmount, err)

	_, err = ExecuteBurn(deps, mockEnv(), mockInfo(alice), u128(12340001))
	assert.Error(t, err)
	assert.Equal(t, u128(12340000), totalSupply(t, deps))

	res, err := ExecuteBurn(deps, mockEnv(), mockInfo(alice), u128(19))
	require.NoError(t, err)
	assert.Equal(t, []vmcontext.Attribute{
		{Key: "action", Value: "burn"},
		{Key: "from", Value: alice},
		{Key: "amount", Value: "19"},
	}, res.Attributes)
	assert.Equal(t, u128(12340000-19), balanceOf(t, deps, alice))
	assert.Equal(t, u128(12340000-19), totalSupply(t, deps))
}

func TestMint(t *testing.T) {
	deps := mockDeps()
	limit := u128(12400000)
	doInstantiate(t, deps, genesis, u128(12340000), &MinterResponse{Minter: minter, Cap: &limit})

	_, err := ExecuteMint(deps, mockEnv(), mockInfo(minter), alice, prototype.ZeroUint128)
	assert.Equal(t, ErrInvalidZeroAmount, err)

	_, err = ExecuteMint(deps, mockEnv(), mockInfo(genesis), alice, u128(1))
	assert.Equal(t, ErrUnauthorized, err)

	res, err := ExecuteMint(deps, mockEnv(), mockInfo(minter), alice, u128(60000))
	require.NoError(t, err)
	v, _ := res.Attribute("action")
	assert.Equal(t, "mint", v)
	assert.Equal(t, u128(60000), balanceOf(t, deps, alice))
	assert.Equal(t, u128(12400000), totalSupply(t, deps))

	_, err = ExecuteMint(deps, mockEnv(), mockInfo(minter), alice, u128(1))
	assert.Equal(t, ErrCannotExceedCap, err)
	assert.Equal(t, u128(12400000), totalSupply(t, deps))
}

func TestMintWithoutMinter(t *testing.T) {
	deps := mockDeps()
	doInstantiate(t, deps, genesis, u128(100), nil)

	_, err := ExecuteMint(deps, mockEnv(), mockInfo(genesis), alice, u128(1))
	assert.Equal(t, ErrUnauthorized, err)
}

func TestSend(t *testing.T) {
	deps := mockDeps()
	doInstantiate(t, deps, alice, u128(12340000), nil)
	payload := []byte(`{"some":123}`)

	_, err := ExecuteSend(deps, mockEnv(), mockInfo(alice), "contract1", prototype.ZeroUint128, payload)
	assert.Equal(t, ErrInvalidZeroAmount, err)

	res, err := ExecuteSend(deps, mockEnv(), mockInfo(alice), "contract1", u128(76543), payload)
	require.NoError(t, err)
	assert.Equal(t, []vmcontext.Attribute{
		{Key: "action", Value: "send"},
		{Key: "from", Value: alice},
		{Key: "to", Value: "contract1"},
		{Key: "amount", Value: "76543"},
	}, res.Attributes)

	require.Len(t, res.Messages, 1)
	exec := res.Messages[0].Wasm.Execute
	require.NotNil(t, exec)
	assert.Equal(t, "contract1", exec.ContractAddr)
	assert.Empty(t, exec.Funds)

	var hook map[string]Cw20ReceiveMsg
	require.NoError(t, json.Unmarshal(exec.Msg, &hook))
	assert.Equal(t, Cw20ReceiveMsg{Sender: alice, Amount: u128(76543), Msg: payload}, hook["receive"])

	assert.Equal(t, u128(12340000-76543), balanceOf(t, deps, alice))
	assert.Equal(t, u128(76543), balanceOf(t, deps, "contract1"))
}

func instantiateWithMarketing(t *testing.T, deps vmcontext.DepsMut, marketing *InstantiateMarketingInfo) {
	msg := InstantiateMsg{
		Name:            "Cash Token",
		Symbol:          "CASH",
		Decimals:        9,
		InitialBalances: []Cw20Coin{},
		Marketing:       marketing,
	}
	_, err := Instantiate(deps, mockEnv(), mockInfo("creator"), msg)
	require.NoError(t, err)
}

func TestUpdateMarketing(t *testing.T) {
	deps := mockDeps()
	instantiateWithMarketing(t, deps, &InstantiateMarketingInfo{
		Project:     strPtr("Project"),
		Description: strPtr("Description"),
		Marketing:   strPtr("creator"),
		Logo:        &Logo{Url: strPtr("url")},
	})

	_, err := ExecuteUpdateMarketing(deps, mockEnv(), mockInfo(alice), strPtr("New project"), nil, nil)
	assert.Equal(t, ErrUnauthorized, err)

	res, err := ExecuteUpdateMarketing(deps, mockEnv(), mockInfo("creator"), strPtr("New project"), strPtr("  "), nil)
	require.NoError(t, err)
	assert.Equal(t, []vmcontext.Attribute{{Key: "action", Value: "update_marketing"}}, res.Attributes)

	info, err := QueryMarketingInfo(deps.AsRef())
	require.NoError(t, err)
	assert.Equal(t, &MarketingInfoResponse{
		Project:   strPtr("New project"),
		Marketing: strPtr("creator"),
		Logo:      &LogoInfo{Url: "url"},
	}, info)

	_, err = ExecuteUpdateMarketing(deps, mockEnv(), mockInfo("creator"), nil, nil, strPtr("Invalid_Addr"))
	assert.Error(t, err)

	_, err = ExecuteUpdateMarketing(deps, mockEnv(), mockInfo("creator"), nil, nil, strPtr(alice))
	require.NoError(t, err)
	_, err = ExecuteUpdateMarketing(deps, mockEnv(), mockInfo("creator"), strPtr("x"), nil, nil)
	assert.Equal(t, ErrUnauthorized, err)

	_, err = ExecuteUpdateMarketing(deps, mockEnv(), mockInfo(alice), nil, nil, strPtr(""))
	require.NoError(t, err)
	info, err = QueryMarketingInfo(deps.AsRef())
	require.NoError(t, err)
	assert.Nil(t, info.Marketing)
}

func TestUpdateMarketingRemovesEmptyRecord(t *testing.T) {
	deps := mockDeps()
	instantiateWithMarketing(t, deps, &InstantiateMarketingInfo{
		Project:   strPtr("Project"),
		Marketing: strPtr("creator"),
	})

	_, err := ExecuteUpdateMarketing(deps, mockEnv(), mockInfo("creator"), strPtr(""), nil, strPtr(""))
	require.NoError(t, err)

	raw, err := deps.Storage.Get(marketingInfoKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	_, err = ExecuteUpdateMarketing(deps, mockEnv(), mockInfo("creator"), strPtr("Project"), nil, nil)
	assert.Equal(t, ErrUnauthorized, err)
}

func TestUploadLogo(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?><svg></svg>`)
	png := append(append([]byte{}, pngHeader...), 0x00, 0x01)

	deps := mockDeps()
	instantiateWithMarketing(t, deps, &InstantiateMarketingInfo{Marketing: strPtr("creator")})

	_, err := ExecuteUploadLogo(deps, mockEnv(), mockInfo(alice), SvgLogo(svg))
	assert.Equal(t, ErrUnauthorized, err)

	res, err := ExecuteUploadLogo(deps, mockEnv(), mockInfo("creator"), SvgLogo(svg))
	require.NoError(t, err)
	assert.Equal(t, []vmcontext.Attribute{{Key: "action", Value: "upload_logo"}}, res.Attributes)

	logo, err := QueryDownloadLogo(deps.AsRef())
	require.NoError(t, err)
	assert.Equal(t, &DownloadLogoResponse{MimeType: "image/svg+xml", Data: svg}, logo)
	info, err := QueryMarketingInfo(deps.AsRef())
	require.NoError(t, err)
	assert.Equal(t, &LogoInfo{Embedded: true}, info.Logo)

	_, err = ExecuteUploadLogo(deps, mockEnv(), mockInfo("creator"), PngLogo(png))
	require.NoError(t, err)
	logo, err = QueryDownloadLogo(deps.AsRef())
	require.NoError(t, err)
	assert.Equal(t, "image/png", logo.MimeType)

	_, err = ExecuteUploadLogo(deps, mockEnv(), mockInfo("creator"), UrlLogo("new_url"))
	require.NoError(t, err)
	_, err = QueryDownloadLogo(deps.AsRef())
	assert.True(t, vmcontext.IsNotFound(err))
}

func TestUploadLogoVerification(t *testing.T) {
	bigSvg := append([]byte(`<?xml version="1.0"?><svg>`), bytes.Repeat([]byte("a"), LogoSizeCap)...)
	bigPng := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, LogoSizeCap)...)

	cases := []struct {
		name string
		logo Logo
		err  error
	}{
		{"svg without preamble", SvgLogo([]byte(`<svg></svg>`)), ErrInvalidXmlPreamble},
		{"svg too big", SvgLogo(bigSvg), ErrLogoTooBig},
		{"png bad header", PngLogo([]byte("not a png")), ErrInvalidPngHeader},
		{"png too big", PngLogo(bigPng), ErrLogoTooBig},
		{"url and embedded", Logo{Url: strPtr("url"), Embedded: &EmbeddedLogo{Png: pngHeader}}, ErrInvalidLogo},
		{"svg and png", Logo{Embedded: &EmbeddedLogo{Svg: []byte(`<?xml version="1.0"?><svg></svg>`), Png: pngHeader}}, ErrInvalidLogo},
		{"empty", Logo{}, ErrInvalidLogo},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			deps := mockDeps()
			instantiateWithMarketing(t, deps, &InstantiateMarketingInfo{Marketing: strPtr("creator")})
			_, err := ExecuteUploadLogo(deps, mockEnv(), mockInfo("creator"), c.logo)
			assert.Equal(t, c.err, err)
		})
	}
}

func TestUploadLogoWithoutMarketing(t *testing.T) {
	deps := mockDeps()
	doInstantiate(t, deps, genesis, u128(1), nil)

	_, err := ExecuteUploadLogo(deps, mockEnv(), mockInfo(genesis), UrlLogo("url"))
	assert.Equal(t, ErrUnauthorized, err)
}
