package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryzlabs/wallet-tracker/internal/config"
	"github.com/ryzlabs/wallet-tracker/internal/logging"
	"github.com/ryzlabs/wallet-tracker/internal/terminal"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI entry point. Flags override the environment
// configuration when set.
func newRootCommand() *cobra.Command {
	var (
		logDir   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "wallet-tracker",
		Short:        "Interactive terminal for tracking wallet deposits and withdrawals",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if logDir != "" {
				cfg.LogDir = logDir
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			log, err := logging.New(cfg.LogDir, cfg.LogLevel)
			if err != nil {
				// a session without a log file is still usable
				fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
				log = logging.Discard()
			}
			log.WithField("app", cfg.AppName).Info("session log initialized")

			term := terminal.New(cmd.InOrStdin(), cmd.OutOrStdout(), log)
			return term.Run()
		},
	}

	cmd.Flags().StringVar(&logDir, "log-dir", "", "directory for session log files (overrides WALLET_LOG_DIR)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides WALLET_LOG_LEVEL)")

	return cmd
}
