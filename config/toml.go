package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"text/template"

	"github.com/coschain/mide-token/node"
)

const ConfigFileName = "config.toml"

const DefaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

DataDir = "{{ .DataDir }}"
ChainId = "{{ .ChainId }}"

LogLevel = "{{ .LogLevel }}"
LogAge = {{ .LogAge }}

# leveldb or memory
DBType = "{{ .DBType }}"

# address of the HTTP gateway, leave empty to disable it
HTTPListen = "{{ .HTTPListen }}"
HTTPCors = [{{ range $i, $o := .HTTPCors }}{{ if $i }}, {{ end }}"{{ $o }}"{{ end }}]
HTTPLimit = {{ .HTTPLimit }}

# servers asked for the time at start, block time comes from the local clock
NTPServers = [{{ range $i, $s := .NTPServers }}{{ if $i }}, {{ end }}"{{ $s }}"{{ end }}]

# optional TOML file of contracts instantiated when the database is empty
Genesis = "{{ .Genesis }}"
`

var configTemplate = template.Must(template.New("configFileTemplate").Parse(DefaultConfigTemplate))

func WriteNodeConfigFile(configDirPath string, configName string, config node.Config, mode os.FileMode) error {
	var buffer bytes.Buffer
	if err := configTemplate.Execute(&buffer, config); err != nil {
		return err
	}
	configPath := filepath.Join(configDirPath, configName)
	return ioutil.WriteFile(configPath, buffer.Bytes(), mode)
}
