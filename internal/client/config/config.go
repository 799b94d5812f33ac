// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the geoseek client.
//
// Fields:
//   - ServerEndpointAddr: address of the store server's gRPC endpoint.
//   - DisplayName: name shown to other players. Prompted interactively
//     when left empty.
//   - OverpassEndpoint: Overpass API endpoint for venue lookup. Empty
//     selects the public endpoint.
//   - QRCodeFile: path the join-code QR image is written to.
type Config struct {
	ServerEndpointAddr string
	DisplayName        string
	OverpassEndpoint   string
	QRCodeFile         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DisplayName = ""
	c.OverpassEndpoint = ""
	c.QRCodeFile = "joincode.png"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
