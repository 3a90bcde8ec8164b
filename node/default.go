package node

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	DefaultChainId    = "mide-local"
	DefaultHTTPListen = "127.0.0.1:8080"
	DefaultHTTPLimit  = 128
	DefaultLogLevel   = "info"
	DefaultLogAge     = 7
)

// DefaultNodeConfig contains reasonable default settings.
var DefaultNodeConfig = Config{
	DataDir:    DefaultDataDir(),
	ChainId:    DefaultChainId,
	LogLevel:   DefaultLogLevel,
	LogAge:     DefaultLogAge,
	DBType:     DBTypeLevel,
	HTTPListen: DefaultHTTPListen,
	HTTPLimit:  DefaultHTTPLimit,
	NTPServers: []string{"pool.ntp.org", "cn.pool.ntp.org"},
}

func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".mide")
}
