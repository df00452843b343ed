// Package cli provides the command-line interface for Roster.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/roster/internal/config"
	"github.com/mmynk/roster/internal/controller"
	"github.com/mmynk/roster/pkg/logging"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
// Without a subcommand it opens the desktop window.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster - keep a list of people",
		Long: `Roster maintains a list of people (first name, last name, age)
stored in a local SQLite database.

Run without a command to open the desktop window, or use the commands
below to work with the list from a terminal.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logging.Setup(cfg.LogLevel)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))

			return nil
		},
		RunE: runGUI,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./roster.yaml)")
	flags.String("database-path", config.DefaultDatabasePath, "SQLite database file")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.String("metrics-file", "", "write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newDeleteCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// Mistakes the user was already told about are not printed twice.
func Execute() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !controller.Recoverable(err) {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return err
}

// getConfig returns the config loaded by PersistentPreRunE.
func getConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Context() != nil {
		if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
			return cfg, nil
		}
	}
	return nil, errors.New("configuration not loaded")
}
