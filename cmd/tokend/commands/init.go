package commands

import (
	"fmt"
	"os"

	"github.com/coschain/cobra"
	"github.com/coschain/mide-token/common"
	"github.com/coschain/mide-token/config"
	"github.com/coschain/mide-token/node"
)

var (
	chainName string
	dbType    string
	listen    string
	genesis   string
)

var InitCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration files",
		Args:  cobra.NoArgs,
		Run:   initConf,
	}
	cmd.Flags().StringVarP(&chainName, "chain", "c", node.DefaultChainId, "chain id reported to contracts")
	cmd.Flags().StringVarP(&dbType, "db", "b", node.DBTypeLevel, "state backend [leveldb/memory]")
	cmd.Flags().StringVarP(&listen, "listen", "l", node.DefaultHTTPListen, "http gateway address, empty disables it")
	cmd.Flags().StringVarP(&genesis, "genesis", "g", "", "TOML file of contracts instantiated on first start")
	return cmd
}

func initConf(cmd *cobra.Command, args []string) {
	_, _ = cmd, args
	cfg := baseConfig()
	cfg.ChainId = chainName
	cfg.DBType = dbType
	cfg.HTTPListen = listen
	if genesis != "" {
		if _, err := config.LoadGenesisFile(genesis); err != nil {
			common.Fatalf("%v", err)
		}
		cfg.Genesis = genesis
	}
	confdir := cfg.InstanceDir()
	if _, err := os.Stat(confdir); os.IsNotExist(err) {
		if err = os.MkdirAll(confdir, 0700); err != nil {
			common.Fatalf("%v", err)
		}
	}
	if err := config.WriteNodeConfigFile(confdir, config.ConfigFileName, cfg, 0600); err != nil {
		common.Fatalf("%v", err)
	}
	fmt.Println("initialized", confdir)
}
