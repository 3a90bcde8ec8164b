package commands

import (
	"io/ioutil"
	"path/filepath"

	"github.com/coschain/cobra"
	"github.com/coschain/mide-token/common"
	"github.com/coschain/mide-token/config"
	"github.com/coschain/mide-token/db/storage"
	"github.com/coschain/mide-token/iservices"
	"github.com/coschain/mide-token/mylog"
	"github.com/coschain/mide-token/node"
	"github.com/coschain/mide-token/rpc"
	"github.com/coschain/mide-token/vm"
	"github.com/spf13/viper"
)

const ClientIdentifier = "tokend"

const (
	ctxNode = "node"
	ctxHost = "host"
)

var (
	cfgName string
	dataDir string
)

// AddGlobalFlags binds the flags selecting the node instance every command works on.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&cfgName, "name", "n", "", "node name (default is tokend)")
	root.PersistentFlags().StringVarP(&dataDir, "datadir", "d", "", "data directory (default is ~/.mide)")
}

func baseConfig() node.Config {
	cfg := node.DefaultNodeConfig
	cfg.Name = ClientIdentifier
	if cfgName != "" {
		cfg.Name = cfgName
	}
	if dataDir != "" {
		if dir, err := filepath.Abs(dataDir); err == nil {
			cfg.DataDir = dir
		}
	}
	return cfg
}

func loadConfig() node.Config {
	cfg := baseConfig()
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(cfg.InstanceDir())
	if err := v.ReadInConfig(); err != nil {
		common.Fatalf("%s is not initialized (do `%s init` first): %v", cfg.InstanceDir(), ClientIdentifier, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		common.Fatalf("bad %s: %v", config.ConfigFileName, err)
	}
	return cfg
}

// makeNode builds a node running the database and the contract host, plus the gateway when withGateway is set.
func makeNode(withGateway bool) *node.Node {
	cfg := loadConfig()
	app, err := node.New(&cfg)
	if err != nil {
		common.Fatalf("%v", err)
	}
	logger, err := mylog.Init(cfg.LogDir(), cfg.LogLevel, cfg.LogAge)
	if err != nil {
		common.Fatalf("init log: %v", err)
	}
	if !withGateway {
		// one-shot commands print results, not logs
		logger.Out = ioutil.Discard
	}
	app.Log = logger

	_ = app.Register(iservices.DbServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return storage.NewDatabaseService(ctx)
	})
	_ = app.Register(iservices.HostServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return vm.New(ctx)
	})
	if withGateway {
		_ = app.Register(iservices.GatewayServerName, func(ctx *node.ServiceContext) (node.Service, error) {
			return rpc.NewGatewayService(ctx)
		})
	}
	return app
}

// hostOf returns the contract host shared by the command tree, starting a node on first use.
func hostOf(cmd *cobra.Command) iservices.IHost {
	if h, ok := cmd.Context[ctxHost]; ok {
		return h.(iservices.IHost)
	}
	app := makeNode(false)
	if err := app.Start(); err != nil {
		common.Fatalf("start node failed: %v", err)
	}
	s, err := app.Service(iservices.HostServerName)
	if err != nil {
		common.Fatalf("%v", err)
	}
	cmd.Context[ctxNode] = app
	cmd.Context[ctxHost] = s
	return s.(iservices.IHost)
}

// Close stops the node a command opened, if any.
func Close(root *cobra.Command) {
	if n, ok := root.Context[ctxNode]; ok {
		_ = n.(*node.Node).Stop()
		delete(root.Context, ctxNode)
		delete(root.Context, ctxHost)
	}
}
