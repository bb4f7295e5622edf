package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikey/ceknomor/internal/di"
	"github.com/mikey/ceknomor/internal/report"
)

// NewScanCmd creates the scan command.
func NewScanCmd(flags *di.CLIFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [number]",
		Short: "Check a phone number",
		Long: `Check a phone number of 10 to 13 digits and record it in the history.
Separators such as spaces, dashes and a leading + are ignored.`,
		Example: `  ceknomor scan 0812-3456-7890
  ceknomor scan "+62 812 3456 7890" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(a *app) error {
				if flags.Format == report.FormatText {
					fmt.Fprintln(cmd.ErrOrStderr(), "Memeriksa...")
				}

				outcome, err := a.scans.Scan(cmd.Context(), args[0])
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
