package main

import (
	"blindauth/config"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the authctl CLI.
func NewRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "authctl",
		Short: "Operate a blindauth deployment",
		Long: `authctl runs the blindauth server and helps operators work with a
store that only ever holds hashed identifiers.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: config/config.yaml)")

	load := func() (*config.Config, error) {
		if configFile == "" {
			return config.New()
		}

		return config.LoadFile(configFile)
	}

	cmd.AddCommand(NewHashIdentifierCmd(load))
	cmd.AddCommand(NewMigrateCmd(load))
	cmd.AddCommand(NewServeCmd(load))

	return cmd
}

// configLoader defers config loading until a subcommand runs.
type configLoader func() (*config.Config, error)
