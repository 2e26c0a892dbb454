package main

import (
	"blindauth/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  `Run the blindauth HTTP server until interrupted.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			fx.New(app.Options(fx.Supply(cfg))).Run()

			return nil
		},
	}
}
