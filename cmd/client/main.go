package main

import (
	"context"
	"log"

	"github.com/dkravets/geoseek/internal/client/cli"
	"github.com/dkravets/geoseek/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
