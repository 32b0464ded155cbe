package main

import (
	"context"
	"log"
	"os"

	"github.com/redhub-app/redhub-cli/internal/client/cli"
	"github.com/redhub-app/redhub-cli/internal/client/config"
	"github.com/redhub-app/redhub-cli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.Setup(os.Stderr)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
