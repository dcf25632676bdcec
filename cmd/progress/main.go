package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arena-portal-backend/pkg/logger"
)

// Build info - injected via ldflags
var Version = "dev"

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "progress",
		Short:         "Order progress tools",
		Long:          `Resolve ERP status/stage pairs into the customer stepper and inspect live orders.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitWithWriter("development", logLevel, cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newResolveCmd(),
		newTrackCmd(),
		newStatusesCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
