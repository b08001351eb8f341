package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yungbote/exocatalog/internal/app"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "exocatalog",
		Short:         "Exoplanet catalog service",
		Long:          "Loads NASA Exoplanet Archive CSV exports into a relational store and serves them over a JSON API.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a YAML config file (default $"+app.ConfigPathEnv+")")

	cmd.AddCommand(
		newServeCmd(opts),
		newLoadDataCmd(opts),
		newMigrateCmd(opts),
	)
	return cmd
}

// openApp loads configuration, wires the application and migrates the schema.
func (o *rootOptions) openApp(ctx context.Context) (*app.App, error) {
	cfg, err := app.LoadConfig(o.configFile)
	if err != nil {
		return nil, err
	}
	a, err := app.New(ctx, cfg, Version)
	if err != nil {
		return nil, err
	}
	if err := a.Migrate(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}
