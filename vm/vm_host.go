package vm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/mide-token/cw2"
	"github.com/coschain/mide-token/db/storage"
	"github.com/coschain/mide-token/prototype"
	vmcache "github.com/coschain/mide-token/vm/cache"
	vmcontext "github.com/coschain/mide-token/vm/context"
	"github.com/pkg/errors"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// TopicCommitted is published on the event bus with a *CallEvent after every committed call.
const TopicCommitted = "vm:committed"

const (
	hostNamespace   = "host"
	contractPrefix  = "contract/"
	contractAddress = "contract%d"
)

var (
	keyBlock         = []byte("block")
	keyContractCount = []byte("contract_count")
)

var ErrContractNotFound = errors.New("contract not found")

// Contract is the host calling convention: raw JSON messages in, response or query bytes out.
type Contract interface {
	InstantiateRaw(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg []byte) (*vmcontext.Response, error)
	ExecuteRaw(deps vmcontext.DepsMut, env vmcontext.Env, info vmcontext.MessageInfo, msg []byte) (*vmcontext.Response, error)
	QueryRaw(deps vmcontext.Deps, env vmcontext.Env, msg []byte) ([]byte, error)
	MigrateRaw(deps vmcontext.DepsMut, env vmcontext.Env, msg []byte) (*vmcontext.Response, error)
}

// CallEvent describes a committed state-changing call.
type CallEvent struct {
	Kind     string
	Contract string
	Sender   string
	Block    vmcontext.BlockInfo
	Response *vmcontext.Response
}

// Host runs a contract against a shared database. Every state-changing call advances the block,
// runs in its own transaction and is committed only when the contract succeeds.
type Host struct {
	db      *storage.TransactionalDatabase
	meta    storage.Database
	code    Contract
	cache   *vmcache.StorageCache
	queries *vmcache.QueryCache
	api     vmcontext.Api
	bus     EventBus.Bus
	log     *logrus.Logger
	chainId string
	clock   func() time.Time

	block vmcontext.BlockInfo
	lock  deadlock.RWMutex
}

type HostOption func(h *Host)

func WithEventBus(bus EventBus.Bus) HostOption {
	return func(h *Host) { h.bus = bus }
}

func WithLogger(log *logrus.Logger) HostOption {
	return func(h *Host) { h.log = log }
}

func WithClock(clock func() time.Time) HostOption {
	return func(h *Host) { h.clock = clock }
}

func WithCacheSize(size int) HostOption {
	return func(h *Host) {
		h.cache, _ = vmcache.NewStorageCache(h.db, size)
	}
}

func WithQueryCacheSize(size int) HostOption {
	return func(h *Host) { h.queries = vmcache.NewQueryCache(size) }
}

func NewHost(db *storage.TransactionalDatabase, code Contract, chainId string, opts ...HostOption) (*Host, error) {
	h := &Host{
		db:      db,
		meta:    storage.NewNamespace(db, hostNamespace),
		code:    code,
		api:     vmcontext.NewApi(),
		chainId: chainId,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = logrus.New()
	}
	if h.cache == nil {
		cache, err := vmcache.NewStorageCache(db, vmcache.DefaultLruSize)
		if err != nil {
			return nil, err
		}
		h.cache = cache
	}
	if h.queries == nil {
		h.queries = vmcache.NewQueryCache(vmcache.DefaultQueryCacheSize)
	}
	if err := h.loadBlock(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Host) loadBlock() error {
	data, err := h.meta.Get(keyBlock)
	if err == storage.ErrNotFound {
		h.block = vmcontext.BlockInfo{ChainID: h.chainId}
		return nil
	}
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, &h.block); err != nil {
		return errors.Wrap(err, "corrupted block info")
	}
	h.block.ChainID = h.chainId
	return nil
}

// Block returns the last committed block.
func (h *Host) Block() vmcontext.BlockInfo {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.block
}

func (h *Host) nextBlock() vmcontext.BlockInfo {
	now := prototype.TimestampFromTime(h.clock())
	if now <= h.block.Time {
		now = h.block.Time + 1
	}
	return vmcontext.BlockInfo{Height: h.block.Height + 1, Time: now, ChainID: h.chainId}
}

func (h *Host) env(block vmcontext.BlockInfo, contract string) vmcontext.Env {
	return vmcontext.Env{Block: block, Contract: vmcontext.ContractInfo{Address: contract}}
}

func (h *Host) exists(contract string) (bool, error) {
	return h.meta.Has([]byte(contractPrefix + contract))
}

// transact runs call in a transaction on a new block, committing state and block together on success.
func (h *Host) transact(kind, contract, sender string, call func(deps vmcontext.DepsMut, env vmcontext.Env) (*vmcontext.Response, error)) (*vmcontext.Response, error) {
	block := h.nextBlock()
	deps := vmcontext.DepsMut{Storage: vmcontext.NewStorage(h.cache.Fetch(contract)), Api: h.api}

	h.db.BeginTransaction()
	res, err := call(deps, h.env(block, contract))
	if err == nil {
		var data []byte
		if data, err = json.Marshal(block); err == nil {
			err = h.meta.Put(keyBlock, data)
		}
	}
	if endErr := h.db.EndTransaction(err == nil); err == nil {
		err = endErr
	}

	fields := logrus.Fields{"kind": kind, "contract": contract, "sender": sender, "height": block.Height}
	if err != nil {
		h.log.WithFields(fields).WithError(err).Warn("contract call reverted")
		return nil, err
	}
	h.block = block
	h.log.WithFields(fields).Debug("contract call committed")
	if h.bus != nil {
		h.bus.Publish(TopicCommitted, &CallEvent{Kind: kind, Contract: contract, Sender: sender, Block: block, Response: res})
	}
	return res, nil
}

// Instantiate creates a new contract instance and returns its address.
func (h *Host) Instantiate(sender string, msg []byte) (string, *vmcontext.Response, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if _, err := h.api.AddrValidate(sender); err != nil {
		return "", nil, err
	}
	count, err := h.contractCount()
	if err != nil {
		return "", nil, err
	}
	contract := fmt.Sprintf(contractAddress, count)
	info := vmcontext.MessageInfo{Sender: sender, Funds: []prototype.Coin{}}
	res, err := h.transact("instantiate", contract, sender, func(deps vmcontext.DepsMut, env vmcontext.Env) (*vmcontext.Response, error) {
		if err := h.meta.Put([]byte(contractPrefix+contract), []byte(sender)); err != nil {
			return nil, err
		}
		if err := h.meta.Put(keyContractCount, []byte(fmt.Sprint(count+1))); err != nil {
			return nil, err
		}
		return h.code.InstantiateRaw(deps, env, info, msg)
	})
	if err != nil {
		return "", nil, err
	}
	return contract, res, nil
}

func (h *Host) contractCount() (uint64, error) {
	data, err := h.meta.Get(keyContractCount)
	if err == storage.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var count uint64
	if _, err = fmt.Sscan(string(data), &count); err != nil {
		return 0, errors.Wrap(err, "corrupted contract count")
	}
	return count, nil
}

func (h *Host) Execute(contract, sender string, msg []byte) (*vmcontext.Response, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if err := h.mustExist(contract); err != nil {
		return nil, err
	}
	if _, err := h.api.AddrValidate(sender); err != nil {
		return nil, err
	}
	info := vmcontext.MessageInfo{Sender: sender, Funds: []prototype.Coin{}}
	return h.transact("execute", contract, sender, func(deps vmcontext.DepsMut, env vmcontext.Env) (*vmcontext.Response, error) {
		return h.code.ExecuteRaw(deps, env, info, msg)
	})
}

func (h *Host) Migrate(contract string, msg []byte) (*vmcontext.Response, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if err := h.mustExist(contract); err != nil {
		return nil, err
	}
	return h.transact("migrate", contract, "", func(deps vmcontext.DepsMut, env vmcontext.Env) (*vmcontext.Response, error) {
		return h.code.MigrateRaw(deps, env, msg)
	})
}

// Query runs against a read-only view of the last committed block.
func (h *Host) Query(contract string, msg []byte) ([]byte, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	if err := h.mustExist(contract); err != nil {
		return nil, err
	}
	if data, ok := h.queries.Get(contract, h.block.Height, msg); ok {
		return data, nil
	}
	deps := vmcontext.Deps{Storage: h.readonly(contract), Api: h.api}
	data, err := h.code.QueryRaw(deps, h.env(h.block, contract), msg)
	if err != nil {
		return nil, err
	}
	h.queries.Set(contract, h.block.Height, msg, data)
	return data, nil
}

func (h *Host) readonly(contract string) vmcontext.ReadonlyStorage {
	return vmcontext.NewStorage(storage.NewReadOnlyDatabase(h.cache.Fetch(contract)))
}

func (h *Host) ContractVersion(contract string) (*cw2.ContractVersion, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	if err := h.mustExist(contract); err != nil {
		return nil, err
	}
	return cw2.GetContractVersion(h.readonly(contract))
}

// Contracts lists instantiated contract addresses in creation order.
func (h *Host) Contracts() ([]string, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	prefix := []byte(contractPrefix)
	end := append([]byte(contractPrefix[:len(contractPrefix)-1]), contractPrefix[len(contractPrefix)-1]+1)
	var contracts []string
	h.meta.Iterate(prefix, end, false, func(key, value []byte) bool {
		contracts = append(contracts, strings.TrimPrefix(string(key), contractPrefix))
		return true
	})
	sort.Slice(contracts, func(i, j int) bool {
		if len(contracts[i]) != len(contracts[j]) {
			return len(contracts[i]) < len(contracts[j])
		}
		return contracts[i] < contracts[j]
	})
	return contracts, nil
}

func (h *Host) mustExist(contract string) error {
	ok, err := h.exists(contract)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrap(ErrContractNotFound, contract)
	}
	return nil
}
