package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/dmitrijs2005/healthtrack/internal/client/cli"
	"github.com/dmitrijs2005/healthtrack/internal/client/config"
	"github.com/dmitrijs2005/healthtrack/internal/logging"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	app := cli.NewApp(cfg, logging.NewZapLogger(zl))
	app.Run(context.Background())
}
