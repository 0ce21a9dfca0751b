package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "alertd",
		Usage: "disaster alert API server",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Usage:   "dotenv file(s) to load before reading the environment",
				EnvVars: []string{"ALERTD_ENV_FILE"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			newCreateAdminCmd(),
		},
	}
}
