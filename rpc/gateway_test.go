package rpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coschain/mide-token/contract"
	"github.com/coschain/mide-token/db/storage"
	"github.com/coschain/mide-token/mylog"
	"github.com/coschain/mide-token/vm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenInit = `{"name":"Mide Token","symbol":"MIDE","decimals":6,
	"initial_balances":[{"address":"addr0000","amount":"1000"}],
	"mint":{"minter":"addr0000"}}`

func newTestGateway(t *testing.T, origins []string, limit int) http.Handler {
	gin.SetMode(gin.TestMode)
	db := storage.NewTransactionalDatabase(storage.NewMemoryDatabase())
	host, err := vm.NewHost(db, contract.NewEntryPoints(contract.NewStandard()), "mide-test")
	require.NoError(t, err)
	return NewGateway(host, mylog.Discard(), origins, limit).Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func instantiate(t *testing.T, h http.Handler) string {
	rec := do(h, "POST", "/contracts", `{"sender":"creator","msg":`+tokenInit+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res InstantiateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res.Address
}

func TestGatewayRoundTrip(t *testing.T) {
	h := newTestGateway(t, nil, 0)
	addr := instantiate(t, h)
	assert.Equal(t, "contract0", addr)

	rec := do(h, "POST", "/contracts/contract0/execute",
		`{"sender":"addr0000","msg":{"transfer":{"recipient":"addr0001","amount":"250"}}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `{"key":"action","value":"transfer"}`)

	rec = do(h, "POST", "/contracts/contract0/query", `{"balance":{"address":"addr0001"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"balance":"250"}`, rec.Body.String())

	rec = do(h, "GET", "/contracts/contract0/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"contract":"crates.io:mide","version":"`+contract.ContractVersion+`"}`, rec.Body.String())

	rec = do(h, "POST", "/contracts/contract0/migrate", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"messages":[],"attributes":[],"events":[]}`, rec.Body.String())

	rec = do(h, "GET", "/contracts", "")
	assert.JSONEq(t, `["contract0"]`, rec.Body.String())

	rec = do(h, "GET", "/block", "")
	assert.Contains(t, rec.Body.String(), `"height":3`)
}

func TestGatewayErrors(t *testing.T) {
	h := newTestGateway(t, nil, 0)
	instantiate(t, h)

	rec := do(h, "POST", "/contracts/contract0/execute",
		`{"sender":"addr0001","msg":{"mint":{"recipient":"addr0001","amount":"1"}}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())

	rec = do(h, "POST", "/contracts/contract5/query", `{"token_info":{}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, "POST", "/contracts/contract0/query", `{"download_logo":{}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, "POST", "/contracts/contract0/execute", `{"sender":"addr0000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing msg"}`, rec.Body.String())

	rec = do(h, "POST", "/contracts/contract0/execute", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, "POST", "/contracts/contract0/query", `{"no_such_query":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGatewayCors(t *testing.T) {
	h := newTestGateway(t, []string{"https://mide.example"}, 0)
	req := httptest.NewRequest("OPTIONS", "/contracts", nil)
	req.Header.Set("Origin", "https://mide.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://mide.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
