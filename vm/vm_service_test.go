package vm

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/coschain/mide-token/db/storage"
	"github.com/coschain/mide-token/iservices"
	"github.com/coschain/mide-token/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesisToml = `
[[contract]]
sender = "creator"
name = "Mide Token"
symbol = "MIDE"
decimals = 6
minter = "addr0000"
cap = "1000000"

  [[contract.balance]]
  address = "addr0000"
  amount = "1000"
`

func startNode(t *testing.T, cfg *node.Config) (*node.Node, iservices.IHost) {
	n, err := node.New(cfg)
	require.NoError(t, err)
	require.NoError(t, n.Register(iservices.DbServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return storage.NewDatabaseService(ctx)
	}))
	require.NoError(t, n.Register(iservices.HostServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return New(ctx)
	}))
	require.NoError(t, n.Start())
	s, err := n.Service(iservices.HostServerName)
	require.NoError(t, err)
	return n, s.(iservices.IHost)
}

func TestHostServiceGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "vm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := node.DefaultNodeConfig
	cfg.Name = "tokend"
	cfg.DataDir = dir
	cfg.DBType = node.DBTypeLevel
	cfg.Genesis = "genesis.toml"
	require.NoError(t, os.MkdirAll(cfg.InstanceDir(), 0700))
	require.NoError(t, ioutil.WriteFile(filepath.Join(cfg.InstanceDir(), "genesis.toml"), []byte(genesisToml), 0600))

	n, host := startNode(t, &cfg)
	contracts, err := host.Contracts()
	require.NoError(t, err)
	assert.Equal(t, []string{"contract0"}, contracts)
	data, err := host.Query("contract0", []byte(`{"minter":{}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"minter":"addr0000","cap":"1000000"}`, string(data))
	require.NoError(t, n.Stop())

	// genesis applies to an empty database only
	n, host = startNode(t, &cfg)
	defer n.Stop()
	contracts, err = host.Contracts()
	require.NoError(t, err)
	assert.Equal(t, []string{"contract0"}, contracts)
	assert.Equal(t, uint64(1), host.Block().Height)
}

func TestHostServiceNeedsDatabase(t *testing.T) {
	cfg := node.DefaultNodeConfig
	cfg.Name = "tokend"
	cfg.DataDir = ""
	n, err := node.New(&cfg)
	require.NoError(t, err)
	require.NoError(t, n.Register(iservices.HostServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return New(ctx)
	}))
	assert.Error(t, n.Start())
}
