package node

import (
	"path/filepath"
	"runtime"
)

const (
	datadirDatabase = "db"
	datadirLogs     = "logs"
)

const (
	DBTypeLevel  = "leveldb"
	DBTypeMemory = "memory"
)

type Config struct {
	// Name refers the name of node's instance
	Name string `toml:"-"`

	// Version should be set to the version number of the program.
	Version string `toml:"-"`

	// DataDir is the root folder that store data and configs
	DataDir string

	// ChainId is reported to contracts as the chain id of every block
	ChainId string

	LogLevel string
	LogAge   uint32

	// DBType selects the contract state backend, leveldb or memory
	DBType string

	// HTTPListen is the address of the HTTP gateway, empty disables it
	HTTPListen string

	// HTTPCors lists the origins allowed to call the gateway from a browser
	HTTPCors []string

	// HTTPLimit bounds the requests the gateway serves at once
	HTTPLimit int

	// NTPServers are asked for the time at start, empty skips the check
	NTPServers []string

	// Genesis optionally names a TOML file of contracts instantiated on first start
	Genesis string
}

// NodeDB returns the path of the contract state database.
func (c *Config) NodeDB() string {
	if c.DataDir == "" {
		return ""
	}
	return c.ResolvePath(datadirDatabase)
}

// LogDir returns the folder of rotated log files.
func (c *Config) LogDir() string {
	if c.DataDir == "" {
		return ""
	}
	return c.ResolvePath(datadirLogs)
}

func (c *Config) name() string {
	if c.Name == "" {
		panic("empty node name, set Config.Name")
	}
	return c.Name
}

// NodeName returns the node's complete name
func (c *Config) NodeName() string {
	name := c.name()
	if c.Version != "" {
		name += "/v" + c.Version
	}
	name += "/" + runtime.GOOS + "-" + runtime.GOARCH
	name += "/" + runtime.Version()
	return name
}

// ResolvePath resolves path in the instance directory.
func (c *Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.InstanceDir(), path)
}

func (c *Config) InstanceDir() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, c.Name)
}
