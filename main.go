package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"

	"walrus/theme"
)

const configFile = "~/.config/walrus/config.json"

type CLI struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	Workers  int    `help:"Number of parallel workers, 0 for one per CPU" default:"0"`

	Gen  theme.GenCmd  `cmd:"" default:"withargs" help:"Generate a color scheme from an image"`
	Load theme.LoadCmd `cmd:"" help:"Reload a previously generated color scheme"`
	Init theme.InitCmd `cmd:"" help:"Install the default templates"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("walrus"),
		kong.Description("Generate 16 color terminal schemes from images."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, configFile),
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		kctx.FatalIfErrorf(fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err))
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	configDir, err := theme.DefaultConfigDir()
	if err != nil {
		slog.Warn("could not locate config folder", "error", err)
	}

	env := &theme.Env{
		Workers:   cli.Workers,
		ConfigDir: configDir,
		Darwin:    runtime.GOOS == "darwin",
		Out:       os.Stdout,
	}

	slog.Debug("running", "command", kctx.Command(), "workers", cli.Workers)
	kctx.FatalIfErrorf(kctx.Run(env))
}
