package config

import (
	"flag"
	"os"

	"github.com/dkravets/geoseek/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server gRPC address (e.g., "127.0.0.1:50051")
//	-n string   display name
//	-o string   Overpass API endpoint
//	-q string   QR code output file
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-o", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server gRPC address")
	fs.StringVar(&config.DisplayName, "n", config.DisplayName, "display name")
	fs.StringVar(&config.OverpassEndpoint, "o", config.OverpassEndpoint, "Overpass API endpoint")
	fs.StringVar(&config.QRCodeFile, "q", config.QRCodeFile, "QR code output file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
