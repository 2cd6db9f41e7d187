package main

import (
	"log/slog"
	"os"

	"edgekey/keyer"

	"github.com/alecthomas/kong"
)

type cli struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`

	keyer.CLICmd `embed:""`
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("edgekey"),
		kong.Description("Detect diagonal edges with a directional convolution kernel and key them onto a chromakey background."),
		kong.UsageOnError(),
	)

	logger := newLogger(c.LogLevel)
	slog.SetDefault(logger)

	kctx.FatalIfErrorf(c.Run(logger))
}
