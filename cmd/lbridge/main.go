// lbridge is a CLI which verifies block proofs and manages the lock ledger.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-bridge/pkg/config"
	"github.com/LiskHQ/lisk-bridge/pkg/log"
)

type runtime struct {
	config *config.Config
	logger log.Logger
}

func newApp() *cli.App {
	rt := &runtime{}
	return &cli.App{
		Name:  "lbridge",
		Usage: "Lisk cross chain transfer proof verifier",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to JSON config",
			},
			&cli.StringFlag{
				Name:  "data-path",
				Usage: "Path to store the lock ledger",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level. One of trace, debug, info, warn, error, fatal",
			},
		},
		Before: func(c *cli.Context) error {
			return rt.load(c)
		},
		Commands: []*cli.Command{
			GetProofCommand(rt),
			GetLockCommand(rt),
			GetUnlockCommand(rt),
			GetLockedCommand(rt),
			GetLocksCommand(rt),
		},
	}
}

func (rt *runtime) load(c *cli.Context) error {
	cfg := &config.Config{}
	if configPath := c.String("config"); configPath != "" {
		fromFile, err := config.ReadFile(configPath)
		if err != nil {
			return err
		}
		cfg = fromFile
	}
	if err := cfg.InsertDefault(); err != nil {
		return err
	}
	cfg.Merge(&config.Config{
		System: &config.SystemConfig{
			DataPath: c.String("data-path"),
			LogLevel: c.String("log-level"),
		},
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := log.NewLogger(cfg.System.LogLevel)
	if err != nil {
		return err
	}
	rt.config = cfg
	rt.logger = logger.With("app", "lbridge")
	return nil
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.DefaultLogger.Errorf("Fail running lbridge with %s", err)
		os.Exit(1)
	}
}
