package config

import (
	"encoding/json"
	"os"

	"github.com/dkravets/geoseek/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	DisplayName        string `json:"display_name"`
	OverpassEndpoint   string `json:"overpass_endpoint"`
	QRCodeFile         string `json:"qr_code_file"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags. If no file is named, nothing is loaded. If the file
// cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.DisplayName = c.DisplayName
	config.OverpassEndpoint = c.OverpassEndpoint
	config.QRCodeFile = c.QRCodeFile
}
