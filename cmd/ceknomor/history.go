package main

import (
	"github.com/spf13/cobra"

	"github.com/mikey/ceknomor/internal/di"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd(flags *di.CLIFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the most recent scans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(a *app) error {
				return a.writer.WriteHistory(a.scans.History(cmd.Context()))
			})
		},
	}
}
