package main

import (
	"fmt"
	"os"

	"smarttech/config"
	"smarttech/pkg/log"
	"smarttech/pkg/server"
	"smarttech/pkg/snowflake"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "smarttech",
		Usage: "storefront api server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.L.Fatal("server exit", zap.Error(err))
	}
}

func run(c *cli.Context) error {
	filename := c.String("config")
	if filename == "" {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		filename = fmt.Sprintf("configs/config.%s.yaml", env)
	}

	conf := config.New(filename)
	if err := snowflake.Init(1); err != nil {
		return err
	}

	return server.Run(InitApp(conf))
}
