package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/di"
)

// NewRescanCmd creates the rescan command.
func NewRescanCmd(flags *di.CLIFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescan [id]",
		Short: "Check the number of a history entry again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s", core.ErrEntryNotFound, args[0])
			}

			return withApp(cmd, flags, func(a *app) error {
				outcome, err := a.scans.Rescan(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.writer.WriteOutcome(outcome)
			})
		},
	}

	cmd.Flags().BoolVar(&flags.NoDelay, "no-delay", false, "Skip the simulated lookup delay")

	return cmd
}
