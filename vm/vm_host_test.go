package vm

import (
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/mide-token/contract"
	"github.com/coschain/mide-token/cw20"
	"github.com/coschain/mide-token/db/storage"
	vmcontext "github.com/coschain/mide-token/vm/context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenInit = `{
	"name": "Mide Token",
	"symbol": "MIDE",
	"decimals": 6,
	"initial_balances": [{"address": "addr0000", "amount": "1000"}],
	"mint": {"minter": "addr0000"}
}`

func fixedClock() func() time.Time {
	now := time.Unix(1571797419, 0)
	return func() time.Time { return now }
}

func newTestHost(t *testing.T, opts ...HostOption) (*Host, *storage.TransactionalDatabase) {
	db := storage.NewTransactionalDatabase(storage.NewMemoryDatabase())
	opts = append([]HostOption{WithClock(fixedClock())}, opts...)
	h, err := NewHost(db, contract.NewEntryPoints(contract.NewStandard()), "mide-test", opts...)
	require.NoError(t, err)
	return h, db
}

func TestHostInstantiateAndQuery(t *testing.T) {
	h, _ := newTestHost(t)

	addr, res, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)
	assert.Equal(t, "contract0", addr)
	assert.NotNil(t, res)

	data, err := h.Query(addr, []byte(`{"balance":{"address":"addr0000"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":"1000"}`, string(data))

	ver, err := h.ContractVersion(addr)
	require.NoError(t, err)
	assert.Equal(t, contract.ContractName, ver.Contract)

	addr2, _, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)
	assert.Equal(t, "contract1", addr2)

	contracts, err := h.Contracts()
	require.NoError(t, err)
	assert.Equal(t, []string{"contract0", "contract1"}, contracts)
	assert.Equal(t, uint64(2), h.Block().Height)
	assert.Equal(t, "mide-test", h.Block().ChainID)
}

func TestHostContractsAreIsolated(t *testing.T) {
	h, _ := newTestHost(t)
	a, _, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)
	b, _, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)

	_, err = h.Execute(a, "addr0000", []byte(`{"transfer":{"recipient":"addr0001","amount":"10"}}`))
	require.NoError(t, err)

	data, err := h.Query(a, []byte(`{"balance":{"address":"addr0001"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":"10"}`, string(data))
	data, err = h.Query(b, []byte(`{"balance":{"address":"addr0001"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":"0"}`, string(data))
}

func TestHostFailedCallIsReverted(t *testing.T) {
	h, _ := newTestHost(t)
	addr, _, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)
	height := h.Block().Height

	_, err = h.Execute(addr, "addr0000", []byte(`{"transfer":{"recipient":"addr0001","amount":"5000"}}`))
	require.Error(t, err)
	assert.Equal(t, height, h.Block().Height)

	data, err := h.Query(addr, []byte(`{"balance":{"address":"addr0000"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":"1000"}`, string(data))

	// a failing instantiate leaves no contract behind
	_, _, err = h.Instantiate("creator", []byte(`{"name":"x","symbol":"MIDE","decimals":6,"initial_balances":[]}`))
	require.Error(t, err)
	contracts, err := h.Contracts()
	require.NoError(t, err)
	assert.Equal(t, []string{"contract0"}, contracts)
}

func TestHostUnknownContract(t *testing.T) {
	h, _ := newTestHost(t)
	_, err := h.Execute("contract7", "addr0000", []byte(`{"burn":{"amount":"1"}}`))
	assert.Equal(t, ErrContractNotFound, errors.Cause(err))
	_, err = h.Query("contract7", []byte(`{"token_info":{}}`))
	assert.Equal(t, ErrContractNotFound, errors.Cause(err))
}

func TestHostRejectsInvalidSender(t *testing.T) {
	h, _ := newTestHost(t)
	_, _, err := h.Instantiate("Bad Sender", []byte(tokenInit))
	assert.Error(t, err)
}

func TestHostMigrateKeepsState(t *testing.T) {
	h, db := newTestHost(t)
	addr, _, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)

	before := snapshot(db)
	res, err := h.Migrate(addr, []byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, res.Attributes)

	after := snapshot(db)
	// only the host's block record moves
	delete(before, "host\x00block")
	delete(after, "host\x00block")
	assert.Equal(t, before, after)
}

func snapshot(db storage.Database) map[string]string {
	m := make(map[string]string)
	db.Iterate(nil, nil, false, func(key, value []byte) bool {
		m[string(key)] = string(value)
		return true
	})
	return m
}

type writingQuery struct {
	*contract.EntryPoints
}

func (w writingQuery) QueryRaw(deps vmcontext.Deps, env vmcontext.Env, msg []byte) ([]byte, error) {
	if err := deps.Storage.(vmcontext.Storage).Set([]byte("k"), []byte("v")); err != nil {
		return nil, err
	}
	return []byte("{}"), nil
}

func TestHostQueryIsReadOnly(t *testing.T) {
	db := storage.NewTransactionalDatabase(storage.NewMemoryDatabase())
	h, err := NewHost(db, writingQuery{contract.NewEntryPoints(contract.NewStandard())}, "mide-test")
	require.NoError(t, err)
	addr, _, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)

	_, err = h.Query(addr, []byte(`{}`))
	assert.Equal(t, storage.ErrReadOnly, err)
}

func TestHostPublishesCommittedCalls(t *testing.T) {
	bus := EventBus.New()
	h, _ := newTestHost(t, WithEventBus(bus))

	var (
		lock   sync.Mutex
		events []*CallEvent
	)
	handler := func(ev *CallEvent) {
		lock.Lock()
		defer lock.Unlock()
		events = append(events, ev)
	}
	require.NoError(t, bus.Subscribe(TopicCommitted, handler))
	defer bus.Unsubscribe(TopicCommitted, handler)

	addr, _, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)
	_, err = h.Execute(addr, "addr0000", []byte(`{"send":{"contract":"contract9","amount":"1","msg":"e30="}}`))
	require.NoError(t, err)
	_, err = h.Execute(addr, "addr0000", []byte(`{"burn":{"amount":"0"}}`))
	assert.Equal(t, cw20.ErrInvalidZeroAmount, errors.Cause(err))

	lock.Lock()
	defer lock.Unlock()
	require.Len(t, events, 2)
	assert.Equal(t, "instantiate", events[0].Kind)
	assert.Equal(t, "execute", events[1].Kind)
	assert.Equal(t, "addr0000", events[1].Sender)
	assert.Equal(t, uint64(2), events[1].Block.Height)
	assert.Len(t, events[1].Response.Messages, 1)
}

func TestHostReopensAtLastBlock(t *testing.T) {
	base := storage.NewMemoryDatabase()
	code := contract.NewEntryPoints(contract.NewStandard())
	h, err := NewHost(storage.NewTransactionalDatabase(base), code, "mide-test", WithClock(fixedClock()))
	require.NoError(t, err)
	_, _, err = h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)
	block := h.Block()

	h2, err := NewHost(storage.NewTransactionalDatabase(base), code, "mide-test")
	require.NoError(t, err)
	assert.Equal(t, block, h2.Block())
	addr, _, err := h2.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)
	assert.Equal(t, "contract1", addr)
}

func TestHostQueryCacheFollowsState(t *testing.T) {
	h, _ := newTestHost(t)
	addr, _, err := h.Instantiate("creator", []byte(tokenInit))
	require.NoError(t, err)
	balance := []byte(`{"balance":{"address":"addr0001"}}`)

	for i := 0; i < 2; i++ {
		data, err := h.Query(addr, balance)
		require.NoError(t, err)
		assert.JSONEq(t, `{"balance":"0"}`, string(data))
	}
	assert.True(t, h.queries.HitRate() > 0)

	_, err = h.Execute(addr, "addr0000", []byte(`{"transfer":{"recipient":"addr0001","amount":"7"}}`))
	require.NoError(t, err)
	data, err := h.Query(addr, balance)
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":"7"}`, string(data))
}
