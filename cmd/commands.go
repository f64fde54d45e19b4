package main

import (
	"fmt"
	"runtime"
	"strings"

	"wallet-monitor/config"
	"wallet-monitor/pkg/logger"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	envFile string
	logFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "wallet-monitor",
		Short: "Watch wallet balances and alert on every change",
		Long: `Poll a ledger node for the balances of the configured addresses, send an
alert on every change and keep a one line status for the tmux status bar.

Configuration is read from the environment, after loading the env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "env file loaded before reading the environment")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", logger.DefaultLogFile, "log file used in production")

	rootCmd.AddCommand(newCheckConfigCmd(flags), newVersionCmd())

	return rootCmd
}

func newCheckConfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Validate the configuration and list enabled channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig(flags.envFile)
			if err != nil {
				return err
			}

			channels, err := newHTTPChannels(cfg)
			if err != nil {
				return err
			}

			var enabled []string
			for _, ch := range channels {
				if ch.Enabled() {
					enabled = append(enabled, ch.Name())
				}
			}
			if cfg.FirebaseEnabled() {
				enabled = append(enabled, "firebase")
			}
			if cfg.HistoryEnabled() {
				enabled = append(enabled, "history")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "node: %s (%s)\n", cfg.NodeURL, cfg.Kind)
			fmt.Fprintf(out, "addresses: %d\n", len(cfg.Addresses))
			if len(enabled) == 0 {
				fmt.Fprintln(out, "channels: none")
			} else {
				fmt.Fprintf(out, "channels: %s\n", strings.Join(enabled, ", "))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wallet-monitor %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", date)
			fmt.Fprintf(out, "go: %s\n", runtime.Version())
		},
	}
}
