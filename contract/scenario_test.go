package contract

import (
	"testing"

	"github.com/coschain/mide-token/cw20"
	vmcontext "github.com/coschain/mide-token/vm/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const instantiateJSON = `{
	"name": "Mide Token",
	"symbol": "MIDE",
	"decimals": 6,
	"initial_balances": [{"address": "addr0000", "amount": "1000"}],
	"mint": {"minter": "addr0000", "cap": null}
}`

func instantiated(t *testing.T) (*EntryPoints, vmcontext.DepsMut) {
	deps, _ := newDeps()
	ep := NewEntryPoints(NewStandard())
	res, err := ep.InstantiateRaw(deps, newEnv(), newInfo("creator"), []byte(instantiateJSON))
	require.NoError(t, err)
	assert.Empty(t, res.Messages)
	return ep, deps
}

func query(t *testing.T, ep *EntryPoints, deps vmcontext.DepsMut, msg string) string {
	data, err := ep.QueryRaw(deps.AsRef(), newEnv(), []byte(msg))
	require.NoError(t, err, msg)
	return string(data)
}

func TestScenarioInstantiateThenQuery(t *testing.T) {
	ep, deps := instantiated(t)

	assert.JSONEq(t, `{"balance":"1000"}`, query(t, ep, deps, `{"balance":{"address":"addr0000"}}`))
	assert.JSONEq(t, `{"minter":"addr0000","cap":null}`, query(t, ep, deps, `{"minter":{}}`))
	assert.JSONEq(t, `{"name":"Mide Token","symbol":"MIDE","decimals":6,"total_supply":"1000"}`,
		query(t, ep, deps, `{"token_info":{}}`))

	raw, err := deps.Storage.Get([]byte("contract_info"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"contract":"crates.io:mide","version":"`+ContractVersion+`"}`, string(raw))
}

func TestScenarioMint(t *testing.T) {
	ep, deps := instantiated(t)
	mint := []byte(`{"mint":{"recipient":"addr0001","amount":"500"}}`)

	res, err := ep.ExecuteRaw(deps, newEnv(), newInfo("addr0000"), mint)
	require.NoError(t, err)
	action, _ := res.Attribute("action")
	assert.Equal(t, "mint", action)
	assert.JSONEq(t, `{"balance":"500"}`, query(t, ep, deps, `{"balance":{"address":"addr0001"}}`))
	assert.JSONEq(t, `{"name":"Mide Token","symbol":"MIDE","decimals":6,"total_supply":"1500"}`,
		query(t, ep, deps, `{"token_info":{}}`))

	_, err = ep.ExecuteRaw(deps, newEnv(), newInfo("addr0001"), mint)
	assert.Equal(t, cw20.ErrUnauthorized, err)
	assert.JSONEq(t, `{"balance":"500"}`, query(t, ep, deps, `{"balance":{"address":"addr0001"}}`))
}

func TestScenarioAllowanceThenTransferFrom(t *testing.T) {
	ep, deps := instantiated(t)

	_, err := ep.ExecuteRaw(deps, newEnv(), newInfo("addr0000"),
		[]byte(`{"increase_allowance":{"spender":"addr0002","amount":"300","expires":null}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"allowance":"300","expires":{"never":{}}}`,
		query(t, ep, deps, `{"allowance":{"owner":"addr0000","spender":"addr0002"}}`))

	res, err := ep.ExecuteRaw(deps, newEnv(), newInfo("addr0002"),
		[]byte(`{"transfer_from":{"owner":"addr0000","recipient":"addr0003","amount":"200"}}`))
	require.NoError(t, err)
	by, _ := res.Attribute("by")
	assert.Equal(t, "addr0002", by)

	assert.JSONEq(t, `{"balance":"800"}`, query(t, ep, deps, `{"balance":{"address":"addr0000"}}`))
	assert.JSONEq(t, `{"balance":"200"}`, query(t, ep, deps, `{"balance":{"address":"addr0003"}}`))
	assert.JSONEq(t, `{"allowance":"100","expires":{"never":{}}}`,
		query(t, ep, deps, `{"allowance":{"owner":"addr0000","spender":"addr0002"}}`))
	assert.JSONEq(t, `{"accounts":["addr0000","addr0003"]}`, query(t, ep, deps, `{"all_accounts":{}}`))
}
