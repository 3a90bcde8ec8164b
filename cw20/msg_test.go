package cw20

import (
	"encoding/json"
	"testing"

	"github.com/coschain/mide-token/prototype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteMsgJSON(t *testing.T) {
	var msg ExecuteMsg
	require.NoError(t, json.Unmarshal([]byte(`{"transfer":{"recipient":"addr0001","amount":"123"}}`), &msg))
	assert.Equal(t, TransferMsg{Recipient: "addr0001", Amount: u128(123)}, msg.Variant)

	require.NoError(t, json.Unmarshal([]byte(`{"increase_allowance":{"spender":"addr0002","amount":"5","expires":{"at_height":77}}}`), &msg))
	height := uint64(77)
	assert.Equal(t, IncreaseAllowanceMsg{Spender: "addr0002", Amount: u128(5), Expires: &Expiration{AtHeight: &height}}, msg.Variant)

	require.NoError(t, json.Unmarshal([]byte(`{"upload_logo":{"url":"https://logo"}}`), &msg))
	assert.Equal(t, UploadLogoMsg(UrlLogo("https://logo")), msg.Variant)

	data, err := json.Marshal(ExecuteMsg{Variant: BurnMsg{Amount: u128(9)}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"burn":{"amount":"9"}}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"approve":{}}`), &msg))
	assert.Error(t, json.Unmarshal([]byte(`{"burn":{"amount":"1"},"mint":{"recipient":"a","amount":"1"}}`), &msg))
	assert.Error(t, json.Unmarshal([]byte(`{"burn":{"amount":1}}`), &msg))
}

func TestUploadLogoMsgJSON(t *testing.T) {
	var msg ExecuteMsg
	require.NoError(t, json.Unmarshal([]byte(`{"upload_logo":{"embedded":{"png":"iVBORw0KGgo="}}}`), &msg))
	assert.Equal(t, UploadLogoMsg(PngLogo(pngHeader)), msg.Variant)

	require.NoError(t, json.Unmarshal([]byte(`{"upload_logo":{"embedded":{"svg":"PHN2Zz4="}}}`), &msg))
	assert.Equal(t, UploadLogoMsg(SvgLogo([]byte("<svg>"))), msg.Variant)

	for _, raw := range []string{
		`{"upload_logo":{"url":"https://logo","embedded":{"png":"iVBORw0KGgo="}}}`,
		`{"upload_logo":{"embedded":{"svg":"PHN2Zz4=","png":"iVBORw0KGgo="}}}`,
		`{"upload_logo":{"embedded":{}}}`,
		`{"upload_logo":{"embedded":null}}`,
		`{"upload_logo":{}}`,
	} {
		assert.Error(t, json.Unmarshal([]byte(raw), &msg), raw)
	}

	var inst InstantiateMsg
	err := json.Unmarshal([]byte(`{"name":"Cash Token","symbol":"CASH","decimals":9,"initial_balances":[],`+
		`"marketing":{"logo":{"url":"https://logo","embedded":{"svg":"PHN2Zz4="}}}}`), &inst)
	assert.Error(t, err)
}

func TestNullVariantBodyRejected(t *testing.T) {
	var msg ExecuteMsg
	assert.Error(t, json.Unmarshal([]byte(`{"burn":null}`), &msg))
	assert.Error(t, json.Unmarshal([]byte(`{"upload_logo": null }`), &msg))

	var query QueryMsg
	assert.Error(t, json.Unmarshal([]byte(`{"token_info":null}`), &query))
}

func TestExecuteVariantTagsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range ExecuteVariants() {
		assert.False(t, seen[v.Tag()], v.Tag())
		seen[v.Tag()] = true
	}
	assert.Len(t, seen, 11)

	seen = map[string]bool{}
	for _, v := range QueryVariants() {
		assert.False(t, seen[v.Tag()], v.Tag())
		seen[v.Tag()] = true
	}
	assert.Len(t, seen, 8)
}

func TestQueryMsgJSON(t *testing.T) {
	var msg QueryMsg
	require.NoError(t, json.Unmarshal([]byte(`{"token_info":{}}`), &msg))
	assert.Equal(t, TokenInfoQuery{}, msg.Variant)

	require.NoError(t, json.Unmarshal([]byte(`{"all_accounts":{"start_after":"addr0001","limit":5}}`), &msg))
	after, limit := "addr0001", uint32(5)
	assert.Equal(t, AllAccountsQuery{StartAfter: &after, Limit: &limit}, msg.Variant)
}

func TestResponseJSON(t *testing.T) {
	data, err := json.Marshal(AllowanceResponse{Allowance: prototype.ZeroUint128})
	require.NoError(t, err)
	assert.JSONEq(t, `{"allowance":"0","expires":{"never":{}}}`, string(data))

	data, err = json.Marshal(MarketingInfoResponse{Logo: &LogoInfo{Embedded: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"project":null,"description":null,"logo":"embedded","marketing":null}`, string(data))

	data, err = json.Marshal(MinterResponse{Minter: "minter0000"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"minter":"minter0000","cap":null}`, string(data))

	var expires Expiration
	assert.Error(t, json.Unmarshal([]byte(`{"at_height":1,"never":{}}`), &expires))
	require.NoError(t, json.Unmarshal([]byte(`{"at_time":"1571797419000000000"}`), &expires))
	assert.Equal(t, ExpiresAtTime(prototype.TimestampFromSeconds(1571797419)), expires)
}
