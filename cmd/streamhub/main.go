package main

import (
	"context"
	"log"
	"os"

	"github.com/streamhub/streamhub/internal/buildinfo"
	"github.com/streamhub/streamhub/internal/cli"
	"github.com/streamhub/streamhub/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
