package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/permit-atlas/pkg/runtime/terminal"
	"github.com/de-tools/permit-atlas/pkg/services/config"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("PERMIT_ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	registry, err := config.NewRegistryOrDefault(cfg.Catalog.ProfilesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read profiles: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Output:   os.Stdout,
	})

	if err := cli.Execute(logger.WithContext(context.Background())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
