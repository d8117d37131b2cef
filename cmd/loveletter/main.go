package main

import (
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/loveletter/internal/common/logging"
	"github.com/KirkDiggler/loveletter/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command
type Globals struct {
	EnvFile  string `default:".env" help:"Optional env file read before the environment"`
	LogLevel string `help:"Log level, overrides LOG_LEVEL"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Serve    ServeCmd         `cmd:"" default:"1" help:"Run the Discord bot"`
	Simulate SimulateCmd      `cmd:"" help:"Play a local game with random moves"`
}

// load reads the configuration and builds the process logger
func (g *Globals) load() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(g.EnvFile)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if g.LogLevel != "" {
		level = g.LogLevel
	}

	logger, err := logging.New(&logging.Config{
		Level:  level,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("loveletter"),
		kong.Description("Love Letter card game bot"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
