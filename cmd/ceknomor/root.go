package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/di"
	"github.com/mikey/ceknomor/internal/ports"
	"github.com/mikey/ceknomor/internal/report"
)

// NewRootCmd creates the root command for ceknomor.
func NewRootCmd() *cobra.Command {
	flags := &di.CLIFlags{}

	cmd := &cobra.Command{
		Use:   "ceknomor",
		Short: "Check an Indonesian phone number for fraud risk",
		Long: `ceknomor scores a phone number for fraud risk, shows the reasons behind
the score and keeps the last scans in a local history.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to config file")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	cmd.PersistentFlags().StringVar(&flags.Backend, "backend", "", "History backend (memory, file, sqlite, mysql)")
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "f", report.FormatText, "Output format (text, json, yaml, markdown)")

	// Add subcommands
	cmd.AddCommand(NewScanCmd(flags))
	cmd.AddCommand(NewHistoryCmd(flags))
	cmd.AddCommand(NewRescanCmd(flags))
	cmd.AddCommand(NewShareCmd(flags))
	cmd.AddCommand(NewReportCmd(flags))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, core.UserMessage(err))
		stop()
		os.Exit(1)
	}
}

// app is what a subcommand needs from the container
type app struct {
	scans  *core.ScanService
	shares *core.ShareService
	writer report.Writer
}

// withApp builds the container for flags, runs fn and releases the history
// backend afterwards
func withApp(cmd *cobra.Command, flags *di.CLIFlags, fn func(a *app) error) error {
	writer, err := report.NewWriter(flags.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		return fmt.Errorf("failed to build dependency container: %w", err)
	}

	return container.Invoke(func(
		logger *zap.Logger,
		scans *core.ScanService,
		shares *core.ShareService,
		slot ports.SlotStore,
	) error {
		defer logger.Sync()
		defer slot.Stop()

		return fn(&app{
			scans:  scans,
			shares: shares,
			writer: writer,
		})
	})
}
