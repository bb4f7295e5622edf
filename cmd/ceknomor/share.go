package main

import (
	"github.com/spf13/cobra"

	"github.com/mikey/ceknomor/internal/di"
)

// NewShareCmd creates the share command.
func NewShareCmd(flags *di.CLIFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "share [number]",
		Short: "Share that a number was checked",
		Long: `Send a short message about the check through the configured SMTP relay.
Without a relay, a link to copy is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(a *app) error {
				outcome, err := a.shares.Share(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.writer.WriteShare(outcome)
			})
		},
	}
}
