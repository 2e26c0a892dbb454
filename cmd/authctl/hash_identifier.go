package main

import (
	"blindauth/internal/infra/auth"

	"github.com/spf13/cobra"
)

// NewHashIdentifierCmd creates the hash-identifier subcommand.
func NewHashIdentifierCmd(load configLoader) *cobra.Command {
	var salt string

	cmd := &cobra.Command{
		Use:   "hash-identifier <email>",
		Short: "Print the stored hash for an email",
		Long: `Print the identifier hash the server would store for the given email,
using auth.identifierSalt from the config unless --salt is given. Use it to
find a user's row without the store ever holding the email.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("salt") {
				cfg, err := load()
				if err != nil {
					return err
				}

				var configured bool
				salt, configured = cfg.Auth.ResolveIdentifierSalt()
				if !configured {
					cmd.PrintErrln("warning: auth.identifierSalt is not set, using the built-in salt")
				}
			}

			cmd.Println(auth.HashIdentifier(args[0], salt))

			return nil
		},
	}

	cmd.Flags().StringVar(&salt, "salt", "", "identifier salt (overrides the config)")

	return cmd
}
