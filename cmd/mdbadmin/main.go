package main

import (
	"fmt"
	"os"

	"github.com/mydailybill/mdb-admin/internal/interfaces/cli"
	"github.com/mydailybill/mdb-admin/pkg/config"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load configuration: "+err.Error())
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("starting console")

	app := cli.NewApp(cfg, log)
	if err := cli.NewRootCommand(app).Execute(); err != nil {
		os.Exit(1)
	}
}
