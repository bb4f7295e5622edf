package main

import (
	"github.com/spf13/cobra"

	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/di"
	"github.com/mikey/ceknomor/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd(flags *di.CLIFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "report [number]",
		Short: "Show the confirmation for reporting a number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) > 0 {
				raw = args[0]
			}

			prompt, err := core.ReportPromptFor(raw)
			if err != nil {
				return err
			}

			writer, err := report.NewWriter(flags.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return writer.WriteReport(prompt)
		},
	}
}
